package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/gots/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/infra/plan"
	"github.com/stardust-cli/stardust/pkg/usecase"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func (x *CLI) organizeCommand() *cli.Command {
	var (
		gh       config.GitHub
		org      config.Organize
		planFile string
		dryRun   bool
	)

	return &cli.Command{
		Name:  "organize",
		Usage: "Create a List per plan category and file starred repositories into them",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "plan",
				Aliases:     []string{"p"},
				Usage:       "Path to the category plan (YAML)",
				Sources:     cli.EnvVars("STARDUST_PLAN"),
				Destination: &planFile,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Show what would change without changing anything",
				Destination: &dryRun,
			},
		}, gh.Flags(), org.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithCommand(ctx, "organize")
			cfg, err := x.buildConfig(ctx, &gh, &org)
			if err != nil {
				return err
			}

			p, err := plan.Load(planFile)
			if err != nil {
				return err
			}

			uc := newUseCase(&gh, plan.NewClassifier(p))
			result, err := uc.Organize(ctx, cfg, &usecase.OrganizeInput{DryRun: dryRun})
			if result != nil {
				x.renderOrganizeResult(result, dryRun)
			}
			return err
		},
	}
}

func (x *CLI) renderOrganizeResult(result *model.OrganizeResult, dryRun bool) {
	table := tablewriter.NewWriter(x.out)
	if dryRun {
		table.SetCaption(true, "dry run: nothing was changed")
	}
	table.SetHeader([]string{"Result", "Count"})
	table.AppendBulk([][]string{
		{"Lists created", strconv.Itoa(len(result.CreatedLists))},
		{"Repositories added", strconv.Itoa(result.Assigned)},
		{"Already in place", strconv.Itoa(result.Unchanged)},
		{"Unclassified", strconv.Itoa(result.Unclassified)},
		{"Failed", strconv.Itoa(result.Failed)},
	})
	table.Render()

	if len(result.CreatedLists) > 0 {
		fmt.Fprintln(x.out, "New Lists: "+strings.Join(result.CreatedLists, ", "))
	}
}
