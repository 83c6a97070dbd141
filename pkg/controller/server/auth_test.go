package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/controller/server"
	"github.com/m-mizutani/octofork/pkg/domain/mock"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

func TestAuthRoutes(t *testing.T) {
	t.Run("login returns authorize URL", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoginFunc: func(ctx context.Context) (*model.RedirectURL, error) {
				return &model.RedirectURL{URL: "https://github.com/login/oauth/authorize?client_id=x"}, nil
			},
		}

		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/login", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		resp := decodeJSON[model.RedirectURL](t, rec)
		gt.V(t, resp.URL).Equal("https://github.com/login/oauth/authorize?client_id=x")
	})

	t.Run("logout returns home URL", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LogoutFunc: func(ctx context.Context) *model.RedirectURL {
				return &model.RedirectURL{URL: "http://localhost:3000/"}
			},
		}

		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/logout", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"url":"http://localhost:3000/"}`)
	})

	t.Run("callback exchanges code", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetAccessTokenFunc: func(ctx context.Context, code, state string) (*model.AccessToken, error) {
				return &model.AccessToken{AccessToken: "gho_abc", TokenType: "bearer", Scope: "repo"}, nil
			},
		}

		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=c0de&state=st", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Cache-Control")).Equal("no-store")

		token := decodeJSON[model.AccessToken](t, rec)
		gt.V(t, token.AccessToken).Equal("gho_abc")

		calls := uc.GetAccessTokenCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Code).Equal("c0de")
		gt.V(t, calls[0].State).Equal("st")
	})

	t.Run("callback without code", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/callback?state=st", nil))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.GetAccessTokenCalls()).Length(0)
	})

	t.Run("callback with denied authorization", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/callback?error=access_denied", nil))
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.A(t, uc.GetAccessTokenCalls()).Length(0)
	})

	t.Run("callback with rejected code", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetAccessTokenFunc: func(ctx context.Context, code, state string) (*model.AccessToken, error) {
				return nil, types.ErrOAuthExchange
			},
		}
		rec := serve(t, server.New(uc), httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=bad", nil))
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})
}
