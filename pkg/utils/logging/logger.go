package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Classic and fine-grained personal access tokens, OAuth and app tokens.
var githubTokenPattern = regexp.MustCompile(`\b(gh[pousr]_[A-Za-z0-9]{36,}|github_pat_[A-Za-z0-9_]{22,})\b`)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func init() {
	_ = Configure("text", "info", "stderr")
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

// newFilter hides credentials wherever they show up in log attributes: typed tokens, fields
// named Token (model.Config and friends), `masq:"secret"` fields and raw token strings such as
// an echoed environment line.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubToken](masq.MaskWithSymbol('*', 16)),
		masq.WithFieldName("Token", masq.MaskWithSymbol('*', 16)),
		masq.WithRegex(githubTokenPattern),
	)
}

func openOutput(logOutput string) (io.Writer, error) {
	switch logOutput {
	case "stderr", "":
		// Tables and prompts own stdout.
		return os.Stderr, nil
	case "stdout", "-":
		return os.Stdout, nil
	}

	fd, err := os.Create(filepath.Clean(logOutput))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, nil
}

func newTextHandler(w io.Writer, level slog.Level, filter func([]string, slog.Attr) slog.Attr) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(level == slog.LevelDebug),
		clog.WithColorMap(&clog.ColorMap{
			Level: map[slog.Level]*color.Color{
				slog.LevelDebug: color.New(color.FgGreen, color.Bold),
				slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
				slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
				slog.LevelError: color.New(color.FgRed, color.Bold),
			},
			LevelDefault: color.New(color.FgBlue, color.Bold),
			Time:         color.New(color.FgWhite),
			Message:      color.New(color.FgHiWhite),
			AttrKey:      color.New(color.FgHiCyan),
			AttrValue:    color.New(color.FgHiWhite),
		}),
		clog.WithAttrHook(clog.GoerrHook),
		clog.WithReplaceAttr(filter),
	)
}

// Configure replaces the default logger. Output is "stderr", "stdout" ("-" is stdout) or a file path.
// Source locations are only attached at debug level, where retry and paging lines are emitted.
func Configure(logFormat, logLevel, logOutput string) error {
	level, ok := levels[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	w, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	filter := newFilter()

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = newTextHandler(w, level, filter)

	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   level == slog.LevelDebug,
			Level:       level,
			ReplaceAttr: filter,
		})

	default:
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	defaultLogger = slog.New(handler)

	return nil
}
