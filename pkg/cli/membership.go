package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/gots/slice"
	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/usecase"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func (x *CLI) membershipCommand() *cli.Command {
	return &cli.Command{
		Name:    "membership",
		Aliases: []string{"m"},
		Usage:   "Change which Lists a repository belongs to",
		Commands: []*cli.Command{
			x.membershipUpdateCommand("add", "Add a repository to Lists, keeping its other Lists", (*usecase.UseCase).AddToLists),
			x.membershipUpdateCommand("remove", "Remove a repository from some Lists", (*usecase.UseCase).RemoveFromLists),
			x.membershipClearCommand(),
		},
	}
}

type membershipFunc func(uc *usecase.UseCase, ctx context.Context, cfg *model.Config, input *usecase.MembershipInput) (*model.Membership, error)

func (x *CLI) membershipUpdateCommand(name, usage string, run membershipFunc) *cli.Command {
	var (
		gh    config.GitHub
		lists []string
	)

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<owner/name>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "list",
				Usage:       "List name or ID (repeatable)",
				Destination: &lists,
				Required:    true,
			},
		}, gh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "membership "+name)
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			membership, err := run(newUseCase(&gh, nil), ctx, cfg, &usecase.MembershipInput{
				Repository: c.Args().First(),
				Lists:      lists,
			})
			if err != nil {
				return err
			}

			x.renderMembership(c.Args().First(), membership)
			return nil
		},
	}
}

func (x *CLI) membershipClearCommand() *cli.Command {
	var gh config.GitHub

	return &cli.Command{
		Name:      "clear",
		Usage:     "Remove a repository from every List",
		ArgsUsage: "<owner/name>",
		Flags:     gh.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "membership clear")
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			membership, err := newUseCase(&gh, nil).ClearMembership(ctx, cfg, c.Args().First())
			if err != nil {
				return err
			}

			x.renderMembership(c.Args().First(), membership)
			return nil
		},
	}
}

func (x *CLI) renderMembership(repository string, m *model.Membership) {
	if len(m.Lists) == 0 {
		fmt.Fprintf(x.out, "%s is not in any List\n", repository)
		return
	}

	names := make([]string, len(m.Lists))
	for i, l := range m.Lists {
		names[i] = l.Name
	}
	fmt.Fprintf(x.out, "%s is in: %s\n", repository, strings.Join(names, ", "))
}
