package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/controller/server"
	"github.com/m-mizutani/octofork/pkg/domain/mock"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

func TestRequestLogger(t *testing.T) {
	newServer := func(captured *context.Context) *server.Server {
		return server.New(&mock.UseCaseMock{
			RepoExistsFunc: func(ctx context.Context, owner, repo string) bool {
				*captured = ctx
				return true
			},
		})
	}

	t.Run("request ID is issued and returned", func(t *testing.T) {
		var ctx context.Context
		srv := newServer(&ctx)

		rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/github/repos/jdoe/foo/exists", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		reqID, ok := logging.RequestIDFrom(ctx)
		gt.True(t, ok)
		gt.V(t, rec.Header().Get("X-Request-Id")).Equal(string(reqID))
		gt.NoError(t, uuid.Validate(string(reqID)))
		gt.V(t, logging.From(ctx) == logging.Default()).Equal(false)
	})

	t.Run("caller's request ID is adopted", func(t *testing.T) {
		var ctx context.Context
		srv := newServer(&ctx)
		upstream := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/github/repos/jdoe/foo/exists", nil)
		req.Header.Set("X-Request-Id", upstream)
		rec := serve(t, srv, req)

		reqID, _ := logging.RequestIDFrom(ctx)
		gt.V(t, reqID).Equal(types.RequestID(upstream))
		gt.V(t, rec.Header().Get("X-Request-Id")).Equal(upstream)
	})

	t.Run("malformed request ID is replaced", func(t *testing.T) {
		var ctx context.Context
		srv := newServer(&ctx)

		req := httptest.NewRequest(http.MethodGet, "/github/repos/jdoe/foo/exists", nil)
		req.Header.Set("X-Request-Id", "evil\nvalue")
		rec := serve(t, srv, req)

		gt.V(t, rec.Header().Get("X-Request-Id")).NotEqual("evil\nvalue")
		gt.NoError(t, uuid.Validate(rec.Header().Get("X-Request-Id")))
	})

	t.Run("status code passes through", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		testCases := map[string]struct {
			method string
			path   string
			code   int
		}{
			"health":         {http.MethodGet, "/health", http.StatusOK},
			"unknown route":  {http.MethodGet, "/nothing", http.StatusNotFound},
			"wrong method":   {http.MethodGet, "/github/repos/jdoe/foo/fork", http.StatusMethodNotAllowed},
			"missing header": {http.MethodGet, "/github/user", http.StatusUnauthorized},
		}
		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				rec := serve(t, srv, httptest.NewRequest(tc.method, tc.path, nil))
				gt.V(t, rec.Code).Equal(tc.code)
				gt.V(t, rec.Header().Get("X-Request-Id")).NotEqual("")
			})
		}
	})
}
