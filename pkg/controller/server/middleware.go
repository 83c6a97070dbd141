package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

const requestIDHeader = "X-Request-Id"

// requestID adopts the caller's request ID if it is a UUID so that logs can
// be joined across services. Otherwise a new one is issued.
func requestID(r *http.Request) types.RequestID {
	if v := r.Header.Get(requestIDHeader); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return types.RequestID(id.String())
		}
	}
	return types.NewRequestID()
}

// withRequestLogger binds a request scoped logger to the context and writes
// an access log after the handler returns.
func withRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := requestID(r)
		ctx := logging.WithRequestID(r.Context(), reqID)
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)

		w.Header().Set(requestIDHeader, string(reqID))

		rec := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", rec.statusCode),
			slog.Int64("response_bytes", rec.written),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
			slog.Bool("authorized", r.Header.Get("Authorization") != ""),
			slog.Duration("elapsed", time.Since(requestedAt)),
		}
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			attrs = append(attrs, slog.String("route", rctx.RoutePattern()))
		}

		if rec.statusCode >= http.StatusInternalServerError {
			logger.Warn("http access", attrs...)
		} else {
			logger.Info("http access", attrs...)
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	written     int64
	wroteHeader bool
}

func (x *responseRecorder) WriteHeader(code int) {
	if !x.wroteHeader {
		x.statusCode = code
		x.wroteHeader = true
	}
	x.ResponseWriter.WriteHeader(code)
}

func (x *responseRecorder) Write(b []byte) (int, error) {
	x.wroteHeader = true
	n, err := x.ResponseWriter.Write(b)
	x.written += int64(n)
	return n, err
}

// Flush keeps NDJSON streaming working through the recorder.
func (x *responseRecorder) Flush() {
	if f, ok := x.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
