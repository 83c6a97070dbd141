package logging

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octofork/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := RequestIDFrom(ctx); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, WithRequestID(ctx, newID)
}

// WithRequestID returns a new context carrying id, replacing any request ID
// already set.
func WithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

// RequestIDFrom returns request ID in ctx without generating one.
func RequestIDFrom(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID)
	return id, ok
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// InheritContextValues copies request ID from src context to dst context.
// Logger is NOT copied by this function; use With() separately.
func InheritContextValues(dst, src context.Context) context.Context {
	if reqID, ok := RequestIDFrom(src); ok {
		dst = WithRequestID(dst, reqID)
	}
	return dst
}
