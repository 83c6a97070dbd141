package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Fork struct {
	maxAttempts int64
	interval    time.Duration
}

func (x *Fork) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "fork-max-attempts",
			Usage:       "Max number of reads while waiting for a new fork to appear",
			Category:    "Fork",
			Value:       usecase.DefaultForkMaxAttempts,
			Destination: &x.maxAttempts,
			Sources:     cli.EnvVars("OCTOFORK_FORK_MAX_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "fork-interval",
			Usage:       "Interval between reads while waiting for a new fork to appear",
			Category:    "Fork",
			Value:       usecase.DefaultForkInterval,
			Destination: &x.interval,
			Sources:     cli.EnvVars("OCTOFORK_FORK_INTERVAL"),
		},
	}
}

func (x *Fork) MaxAttempts() int {
	return int(x.maxAttempts)
}

func (x *Fork) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithForkMaxAttempts(int(x.maxAttempts)),
		usecase.WithForkInterval(x.interval),
	}
}

func (x Fork) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("MaxAttempts", x.maxAttempts),
		slog.Duration("Interval", x.interval),
	)
}
