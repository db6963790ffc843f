package config

import (
	"log/slog"

	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Organize holds how Lists are created and how stars are classified.
type Organize struct {
	listIsPrivate bool
	batchSize     int64
	maxCategories int64
}

func (x *Organize) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "private",
			Usage:       "Create private Lists (--private=false for public)",
			Category:    "Organize",
			Destination: &x.listIsPrivate,
			Sources:     cli.EnvVars("STARDUST_LIST_IS_PRIVATE", "LIST_IS_PRIVATE"),
			Value:       true,
		},
		&cli.Int64Flag{
			Name:        "batch-size",
			Usage:       "Number of repositories classified at once",
			Category:    "Organize",
			Destination: &x.batchSize,
			Sources:     cli.EnvVars("STARDUST_CLASSIFY_BATCH_SIZE", "CLASSIFY_BATCH_SIZE"),
			Value:       model.DefaultBatchSize,
		},
		&cli.Int64Flag{
			Name:        "max-categories",
			Usage:       "Maximum number of categories (Lists)",
			Category:    "Organize",
			Destination: &x.maxCategories,
			Sources:     cli.EnvVars("STARDUST_MAX_CATEGORIES", "MAX_CATEGORIES"),
			Value:       model.DefaultMaxCategories,
		},
	}
}

func (x *Organize) ListIsPrivate() bool { return x.listIsPrivate }
func (x *Organize) BatchSize() int      { return int(x.batchSize) }
func (x *Organize) MaxCategories() int  { return int(x.maxCategories) }

func (x *Organize) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("listIsPrivate", x.listIsPrivate),
		slog.Int64("batchSize", x.batchSize),
		slog.Int64("maxCategories", x.maxCategories),
	)
}
