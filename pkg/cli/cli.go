package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	writer io.Writer
}

type Option func(*CLI)

// WithWriter sets the destination of command output. Logs are configured
// separately by --log-output.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var logCfg logging.Config

	// .env must be loaded before flags read their environment variables
	if err := config.LoadDotEnv(); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:   "octofork",
		Usage:  "GitHub repository listing and fork orchestration",
		Writer: x.writer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("OCTOFORK_LOG_LEVEL"),
				Destination: &logCfg.Level,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("OCTOFORK_LOG_FORMAT"),
				Destination: &logCfg.Format,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("OCTOFORK_LOG_OUTPUT"),
				Destination: &logCfg.Output,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			reposCommand(),
			forkCommand(),
			existsCommand(),
			loginURLCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logCfg); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
