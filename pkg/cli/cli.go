package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/cli/config"
	"github.com/stardust-cli/stardust/pkg/utils/errutil"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out io.Writer
	in  io.Reader

	debug  bool
	sentry config.Sentry
}

type Option func(*CLI)

// WithOutput replaces stdout for command results. Logs are not affected.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

// WithInput replaces stdin for confirmation prompts.
func WithInput(r io.Reader) Option {
	return func(x *CLI) {
		x.in = r
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out: os.Stdout,
		in:  os.Stdin,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	ctx := context.Background()
	envFile, err := loadEnvFile()
	if err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		return err
	}

	app := &cli.Command{
		Name:  "stardust",
		Usage: "Organize your GitHub stars into GitHub Lists",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("STARDUST_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("STARDUST_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [stderr|stdout|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("STARDUST_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Enable debug logging",
				Sources:     cli.EnvVars("STARDUST_DEBUG", "DEBUG"),
				Destination: &x.debug,
			},
		}, x.sentry.Flags()...),
		Commands: []*cli.Command{
			x.listsCommand(),
			x.membershipCommand(),
			x.starsCommand(),
			x.organizeCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if x.debug {
				logLevel = "debug"
			}
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if envFile != "" {
				logging.Default().Debug("loaded env file", slog.String("path", envFile))
			}

			if err := x.sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	defer x.sentry.Flush()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		return err
	}

	return nil
}

// loadEnvFile reads .env, or the file named by STARDUST_ENV_FILE, into the process environment.
// Variables already set are kept. A missing file is not an error.
func loadEnvFile() (string, error) {
	path := os.Getenv("STARDUST_ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return path, nil
}
