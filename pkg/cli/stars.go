package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/gots/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func (x *CLI) starsCommand() *cli.Command {
	var (
		gh    config.GitHub
		limit int64
	)

	return &cli.Command{
		Name:  "stars",
		Usage: "Show your starred repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Show only the first N repositories (0 shows all)",
				Destination: &limit,
			},
		}, gh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "stars")
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			logger := logging.From(ctx)
			stars, err := newUseCase(&gh, nil).ListStars(ctx, cfg, func(count int) {
				logger.Info("fetching stars", slog.Int("count", count))
			})
			if err != nil {
				return err
			}

			shown := stars
			if limit > 0 && int(limit) < len(shown) {
				shown = shown[:limit]
			}

			table := tablewriter.NewWriter(x.out)
			table.SetHeader([]string{"Repository", "Language", "Stars", "Topics"})
			table.SetAutoWrapText(false)
			for _, repo := range shown {
				table.Append([]string{
					repo.FullName,
					repo.Language,
					strconv.Itoa(repo.Stars),
					strings.Join(repo.Topics, ", "),
				})
			}
			table.Render()

			fmt.Fprintf(x.out, "%d starred repositories\n", len(stars))
			return nil
		},
	}
}
