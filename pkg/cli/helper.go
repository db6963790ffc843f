package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/domain/interfaces"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/infra"
	"github.com/stardust-cli/stardust/pkg/usecase"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// buildConfig assembles the configuration passed to every usecase call. org may be nil.
func (x *CLI) buildConfig(ctx context.Context, gh *config.GitHub, org *config.Organize) (*model.Config, error) {
	cfg := &model.Config{
		Token:         gh.Token(),
		Username:      gh.Username(),
		BatchSize:     model.DefaultBatchSize,
		MaxCategories: model.DefaultMaxCategories,
		Debug:         x.debug,
	}
	if org != nil {
		cfg.ListIsPrivate = org.ListIsPrivate()
		cfg.BatchSize = org.BatchSize()
		cfg.MaxCategories = org.MaxCategories()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("configuration",
		"config", cfg,
		"github", gh,
		"sentry", &x.sentry,
	)
	return cfg, nil
}

func newUseCase(gh *config.GitHub, classifier interfaces.Classifier) *usecase.UseCase {
	options := []infra.Option{
		infra.WithGitHub(gh.New()),
	}
	if classifier != nil {
		options = append(options, infra.WithClassifier(classifier))
	}
	return usecase.New(infra.New(options...))
}

// confirm asks a yes/no question on the CLI input. Anything but "y" or "yes" is a no.
func (x *CLI) confirm(question string) bool {
	fmt.Fprintf(x.out, "%s [y/N]: ", question)

	answer, err := bufio.NewReader(x.in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// localFlags keeps flags of a command that also has subcommands from being inherited by them. Each
// subcommand declares its own GitHub flags.
func localFlags(flags []cli.Flag) []cli.Flag {
	for _, flag := range flags {
		switch f := flag.(type) {
		case *cli.StringFlag:
			f.Local = true
		case *cli.BoolFlag:
			f.Local = true
		case *cli.Int64Flag:
			f.Local = true
		}
	}
	return flags
}
