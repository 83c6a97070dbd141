package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 5 * time.Second

// Sentry configures error reporting of the server. Background fork failures
// and GitHub outages are the main source of events.
type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Error reporting is disabled if empty",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("OCTOFORK_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("OCTOFORK_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name attached to Sentry events",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("OCTOFORK_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

// Configure initializes the Sentry client. The returned function flushes
// buffered events and must be called before the process exits.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if !x.Enabled() {
		logging.From(ctx).Warn("sentry is not configured, errors are only logged")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", x.environment))
	}

	return func() {
		if !sentry.Flush(sentryFlushTimeout) {
			logging.From(ctx).Warn("some sentry events were not sent", slog.Duration("timeout", sentryFlushTimeout))
		}
	}, nil
}

// LogValue omits the DSN, which carries the project key.
func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.Enabled()),
		slog.String("environment", x.environment),
		slog.String("release", x.release),
	)
}
