package server

import (
	"context"
	"time"

	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// DetachContext returns a context for work that outlives the request, such
// as a fork completed after 202 has been sent. It keeps the request's logger
// and request ID but not its cancellation, and expires after timeout.
func DetachContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	bgCtx = logging.InheritContextValues(bgCtx, ctx)
	return context.WithTimeout(bgCtx, timeout)
}
