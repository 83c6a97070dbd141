package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"golang.org/x/time/rate"
)

// Condition performs a single attempt. It returns true with a value when the
// awaited condition holds, false when it does not hold yet. attempt starts
// from 1.
type Condition[T any] func(ctx context.Context, attempt int) (T, bool, error)

type config struct {
	interval    time.Duration
	recoverable func(error) bool
}

type Option func(*config)

// WithInterval sets the minimum interval between the start of two attempts.
// The first attempt is not delayed.
func WithInterval(interval time.Duration) Option {
	return func(cfg *config) {
		cfg.interval = interval
	}
}

// WithRecoverable sets a classifier for errors returned by the condition. An
// error for which f returns true counts as a negative attempt instead of
// aborting the poll.
func WithRecoverable(f func(error) bool) Option {
	return func(cfg *config) {
		cfg.recoverable = f
	}
}

// PollUntil invokes cond until it reports success or maxAttempts attempts
// have been made. Exactly maxAttempts attempts are made before it gives up
// with an error wrapping types.ErrRetriesExhausted, and no attempt is made
// after a success. An error from cond that is not recoverable is returned as is.
func PollUntil[T any](ctx context.Context, maxAttempts int, cond Condition[T], options ...Option) (T, error) {
	var zero T
	if maxAttempts < 1 {
		return zero, goerr.Wrap(types.ErrInvalidOption, "maxAttempts must be positive", goerr.V("max_attempts", maxAttempts))
	}

	cfg := &config{
		recoverable: func(error) bool { return false },
	}
	for _, opt := range options {
		opt(cfg)
	}

	limit := rate.Inf
	if cfg.interval > 0 {
		limit = rate.Every(cfg.interval)
	}
	limiter := rate.NewLimiter(limit, 1)

	logger := logging.From(ctx)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return zero, goerr.Wrap(err, "polling interrupted",
				goerr.V("attempt", attempt),
				goerr.V("max_attempts", maxAttempts),
			)
		}

		value, ok, err := cond(ctx, attempt)
		if err != nil {
			if !cfg.recoverable(err) {
				return zero, err
			}
			logger.Debug("attempt failed with recoverable error",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", maxAttempts),
				slog.Any("error", err),
			)
			continue
		}

		if ok {
			return value, nil
		}

		logger.Debug("condition not satisfied yet",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
		)
	}

	return zero, goerr.Wrap(types.ErrRetriesExhausted, "condition was not satisfied",
		goerr.V("attempts", maxAttempts),
		goerr.V("max_attempts", maxAttempts),
	)
}

// Attempts returns the number of attempts recorded in an error returned by
// PollUntil, or 0 if err carries no attempt count.
func Attempts(err error) int {
	goErr := goerr.Unwrap(err)
	if goErr == nil {
		return 0
	}
	for k, v := range goErr.Values() {
		if fmt.Sprintf("%v", k) != "attempts" {
			continue
		}
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}
