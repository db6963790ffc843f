package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

const (
	DefaultBatchSize     = 20
	DefaultMaxCategories = 32
)

// Config is built once by the CLI and passed to every usecase call.
type Config struct {
	Token         types.GitHubToken `masq:"secret"`
	Username      string
	ListIsPrivate bool
	BatchSize     int
	MaxCategories int
	Debug         bool
}

func (x *Config) Validate() error {
	if x.Token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub token is required")
	}
	if x.Username == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub username is required")
	}
	if x.BatchSize <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "batch size must be positive", goerr.V("batchSize", x.BatchSize))
	}
	if x.MaxCategories <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max categories must be positive", goerr.V("maxCategories", x.MaxCategories))
	}
	return nil
}

func (x *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", x.Username),
		slog.Int("token.len", len(x.Token)),
		slog.Bool("listIsPrivate", x.ListIsPrivate),
		slog.Int("batchSize", x.BatchSize),
		slog.Int("maxCategories", x.MaxCategories),
		slog.Bool("debug", x.Debug),
	)
}
