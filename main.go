package main

import (
	"os"

	"github.com/stardust-cli/stardust/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
