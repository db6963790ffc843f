package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry enables crash reporting of unexpected failures. It is off unless a DSN is given.
type Sentry struct {
	dsn         string
	environment string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("STARDUST_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("STARDUST_SENTRY_ENV"),
			Value:       "cli",
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

func (x *Sentry) Configure(ctx context.Context) error {
	if !x.Enabled() {
		logging.From(ctx).Debug("sentry is disabled")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     "stardust",
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", x.environment))
	}

	return nil
}

// Flush waits for buffered events before the process exits.
func (x *Sentry) Flush() {
	if x.Enabled() {
		sentry.Flush(2 * time.Second)
	}
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.Enabled()),
		slog.String("environment", x.environment),
	)
}
