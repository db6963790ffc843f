package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func (x *CLI) listsCommand() *cli.Command {
	var (
		gh      config.GitHub
		details bool
	)

	return &cli.Command{
		Name:    "lists",
		Aliases: []string{"ls"},
		Usage:   "Show your GitHub Lists",
		Flags: localFlags(slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "details",
				Aliases:     []string{"d"},
				Usage:       "Show repositories of each List",
				Destination: &details,
			},
		}, gh.Flags())),
		Commands: []*cli.Command{
			x.createListCommand(),
			x.updateListCommand(),
			x.deleteListCommand(),
			x.deleteAllListsCommand(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "lists")
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			resp, err := newUseCase(&gh, nil).ShowLists(ctx, cfg)
			if err != nil {
				return err
			}

			x.renderLists(resp, details)
			return nil
		},
	}
}

func (x *CLI) renderLists(resp *model.ListsResponse, details bool) {
	fmt.Fprintf(x.out, "%s has %d Lists\n", resp.Username, resp.TotalLists)

	table := tablewriter.NewWriter(x.out)
	table.SetHeader([]string{"Name", "Repositories", "Visibility", "Description", "ID"})
	table.SetAutoWrapText(false)
	for _, list := range resp.Lists {
		table.Append([]string{
			list.Name,
			strconv.Itoa(list.TotalRepositories),
			visibility(list.IsPrivate),
			list.Description,
			string(list.ID),
		})
	}
	table.Render()

	if !details {
		return
	}

	for _, list := range resp.Lists {
		if len(list.Repositories) == 0 {
			continue
		}

		fmt.Fprintf(x.out, "\n%s\n", list.Name)
		repos := tablewriter.NewWriter(x.out)
		repos.SetHeader([]string{"Repository", "Stars", "Description"})
		repos.SetAutoWrapText(false)
		for _, repo := range list.Repositories {
			repos.Append([]string{repo.FullName(), strconv.Itoa(repo.Stars), repo.Description})
		}
		repos.Render()
	}
}

func visibility(private bool) string {
	if private {
		return "private"
	}
	return "public"
}

func (x *CLI) createListCommand() *cli.Command {
	var (
		gh      config.GitHub
		input   model.CreateListInput
		private bool
	)

	return &cli.Command{
		Name:      "create",
		Usage:     "Create a List",
		ArgsUsage: "<name>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "description",
				Usage:       "List description",
				Destination: &input.Description,
			},
			&cli.BoolFlag{
				Name:        "private",
				Usage:       "Create a private List (--private=false for public)",
				Sources:     cli.EnvVars("STARDUST_LIST_IS_PRIVATE", "LIST_IS_PRIVATE"),
				Destination: &private,
				Value:       true,
			},
		}, gh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "lists create")
			input.Name = c.Args().First()
			input.IsPrivate = private
			if input.Name == "" {
				return goerr.Wrap(types.ErrInvalidOption, "list name is required")
			}

			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			created, err := newUseCase(&gh, nil).CreateList(ctx, cfg, &input)
			if err != nil {
				return err
			}

			fmt.Fprintf(x.out, "Created %s List %q (%s) for %s\n",
				visibility(created.List.IsPrivate), created.List.Name, created.List.ID, created.ViewerLogin)
			return nil
		},
	}
}

func (x *CLI) updateListCommand() *cli.Command {
	var (
		gh          config.GitHub
		name        string
		description string
		private     bool
	)

	return &cli.Command{
		Name:      "update",
		Usage:     "Change the name, description or visibility of a List",
		ArgsUsage: "<list name or ID>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "New List name",
				Destination: &name,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "New List description",
				Destination: &description,
			},
			&cli.BoolFlag{
				Name:        "private",
				Usage:       "Make the List private (--private=false makes it public)",
				Destination: &private,
			},
		}, gh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "lists update")

			var update model.ListUpdate
			if c.IsSet("name") {
				update.Name = &name
			}
			if c.IsSet("description") {
				update.Description = &description
			}
			if c.IsSet("private") {
				update.IsPrivate = &private
			}

			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			list, err := newUseCase(&gh, nil).UpdateList(ctx, cfg, c.Args().First(), &update)
			if err != nil {
				return err
			}

			fmt.Fprintf(x.out, "Updated List %q (%s)\n", list.Name, list.ID)
			return nil
		},
	}
}

func (x *CLI) deleteListCommand() *cli.Command {
	var gh config.GitHub

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a List",
		ArgsUsage: "<list name or ID>",
		Flags:     gh.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "lists delete")
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			list := c.Args().First()
			if err := newUseCase(&gh, nil).DeleteList(ctx, cfg, list); err != nil {
				return err
			}

			fmt.Fprintf(x.out, "Deleted List %q\n", list)
			return nil
		},
	}
}

func (x *CLI) deleteAllListsCommand() *cli.Command {
	var (
		gh  config.GitHub
		yes bool
	)

	return &cli.Command{
		Name:  "delete-all",
		Usage: "Delete every List of the user",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Do not ask for confirmation",
				Destination: &yes,
			},
		}, gh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "lists delete-all")
			cfg, err := x.buildConfig(ctx, &gh, nil)
			if err != nil {
				return err
			}

			if !yes && !x.confirm(fmt.Sprintf("Delete all Lists of %s?", cfg.Username)) {
				fmt.Fprintln(x.out, "Cancelled")
				return nil
			}

			deleted, err := newUseCase(&gh, nil).DeleteAllLists(ctx, cfg, func(deleted, total int) {
				fmt.Fprintf(x.out, "Deleted %d/%d\n", deleted, total)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(x.out, "Deleted %d Lists\n", deleted)
			return nil
		},
	}
}
