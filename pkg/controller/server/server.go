package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/errutil"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

const DefaultBackgroundTimeout = 10 * time.Minute

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps an error to the status code returned to the caller.
// Failures of GitHub itself are reported as bad gateway.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrAuthenticationRequired), errors.Is(err, types.ErrOAuthExchange):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrRetriesExhausted):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrForkCreationFailed):
		return http.StatusBadGateway
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidOption):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// writeError responds with the status for err. Server side failures are
// reported to Sentry.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := errorStatus(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Warn(msg, slog.Any("error", err), slog.Int("status", code))
	}
	writeJSON(w, code, &errorResponse{Error: msg})
}

type config struct {
	backgroundTimeout time.Duration
}

type Option func(*config)

// WithBackgroundTimeout sets the deadline of fork requests that are
// completed after the response has been sent.
func WithBackgroundTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.backgroundTimeout = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		backgroundTimeout: DefaultBackgroundTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(withRequestLogger)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/auth/github", func(r chi.Router) {
		r.Get("/login", handleLogin(uc))
		r.Get("/logout", handleLogout(uc))
		r.Get("/callback", handleCallback(uc))
	})
	r.Route("/github", func(r chi.Router) {
		r.Get("/user", handleGetUser(uc))
		r.Get("/repos", handleListRepos(uc))
		r.Route("/repos/{owner}/{repo}", func(r chi.Router) {
			r.Post("/fork", handleForkRepo(uc, cfg))
			r.Get("/exists", handleRepoExists(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
