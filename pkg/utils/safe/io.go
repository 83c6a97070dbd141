package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// maxDrainSize bounds how much of an unread body is discarded to let the
// connection be reused. Larger leftovers are dropped with the connection.
const maxDrainSize = 64 << 10

// CloseBody discards what is left of an HTTP response body and closes it.
// Failures are logged with the logger in ctx.
func CloseBody(ctx context.Context, body io.ReadCloser) {
	if body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(body, maxDrainSize)); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Debug("failed to drain response body", slog.Any("error", err))
	}
	if err := body.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("failed to close response body", slog.Any("error", err))
	}
}
