package errutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

var kinds = []struct {
	err  error
	name string
}{
	{types.ErrForkCreationFailed, "fork_creation_failed"},
	{types.ErrRetriesExhausted, "retries_exhausted"},
	{types.ErrOAuthExchange, "oauth_exchange"},
	{types.ErrAuthenticationRequired, "authentication_required"},
	{types.ErrValidationFailed, "validation_failed"},
	{types.ErrNotFound, "not_found"},
	{types.ErrInvalidOption, "invalid_option"},
}

// Kind names the first known error class that err belongs to, or "unknown".
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

// HandleError logs err and reports it to Sentry. The request ID and the
// error kind become tags, goerr values become extras.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error_kind", Kind(err))
		if reqID, ok := logging.RequestIDFrom(ctx); ok {
			scope.SetTag("request_id", string(reqID))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		slog.Any("error", err),
		slog.String("error_kind", Kind(err)),
		slog.Any("sentry_event_id", evID),
	)
}
