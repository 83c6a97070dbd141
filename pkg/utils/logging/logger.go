package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func init() {
	_ = Configure(Config{Format: "text", Level: "info", Output: "stdout"})
}

// Config describes the default logger. Output is "stdout", "-", "stderr" or
// a file path.
type Config struct {
	Format string
	Level  string
	Output string
}

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

// newFilter masks credentials wherever they appear in log attributes,
// including inside structs and maps.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.Credential](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.GitHubClientSecret](masq.MaskWithSymbol('*', 16)),
	)
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "stdout", "-", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		fd, err := os.OpenFile(filepath.Clean(output), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", output))
		}
		return fd, nil
	}
}

// NewHandler builds a slog handler for cfg writing into w.
func NewHandler(cfg Config, w io.Writer) (slog.Handler, error) {
	level, ok := levelMap[cfg.Level]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", cfg.Level))
	}

	filter := newFilter()

	switch cfg.Format {
	case "text":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
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
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		}), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", cfg.Format))
	}
}

// Configure replaces the default logger according to cfg.
func Configure(cfg Config) error {
	w, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}

	handler, err := NewHandler(cfg, w)
	if err != nil {
		return err
	}

	defaultLogger = slog.New(handler)
	return nil
}
