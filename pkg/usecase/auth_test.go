package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/domain/mock"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/infra"
	"github.com/m-mizutani/octofork/pkg/usecase"
)

func newOAuthConfig() model.OAuthConfig {
	return model.OAuthConfig{
		ClientID:     "my-client",
		ClientSecret: "my-secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
		HomeURL:      "http://localhost:3000",
		Scopes:       []string{"repo", "read:user"},
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("authorize URL", func(t *testing.T) {
		uc := usecase.New(infra.New(),
			usecase.WithOAuthConfig(newOAuthConfig()),
			usecase.WithStateGenerator(func() string { return "fixed-state" }),
		)

		redirect, err := uc.Login(ctx)
		gt.NoError(t, err)

		u, err := url.Parse(redirect.URL)
		gt.NoError(t, err)
		gt.V(t, u.Scheme).Equal("https")
		gt.V(t, u.Host).Equal("github.com")
		gt.V(t, u.Path).Equal("/login/oauth/authorize")

		q := u.Query()
		gt.V(t, q.Get("client_id")).Equal("my-client")
		gt.V(t, q.Get("redirect_uri")).Equal("http://localhost:8080/auth/github/callback")
		gt.V(t, q.Get("scope")).Equal("repo read:user")
		gt.V(t, q.Get("state")).Equal("fixed-state")
		gt.S(t, redirect.URL).NotContains("my-secret")
	})

	t.Run("state is fresh for every login", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithOAuthConfig(newOAuthConfig()))

		r1 := gt.R1(uc.Login(ctx)).NoError(t)
		r2 := gt.R1(uc.Login(ctx)).NoError(t)
		u1 := gt.R1(url.Parse(r1.URL)).NoError(t)
		u2 := gt.R1(url.Parse(r2.URL)).NoError(t)
		gt.V(t, u1.Query().Get("state")).NotEqual("")
		gt.V(t, u1.Query().Get("state")).NotEqual(u2.Query().Get("state"))
	})

	t.Run("enterprise web URL", func(t *testing.T) {
		uc := usecase.New(infra.New(),
			usecase.WithOAuthConfig(newOAuthConfig()),
			usecase.WithWebURL("https://ghe.example.com/"),
		)

		redirect := gt.R1(uc.Login(ctx)).NoError(t)
		gt.S(t, redirect.URL).Contains("https://ghe.example.com/login/oauth/authorize?")
	})

	t.Run("client ID is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.Login(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestLogout(t *testing.T) {
	uc := usecase.New(infra.New(), usecase.WithOAuthConfig(newOAuthConfig()))
	gt.V(t, uc.Logout(context.Background()).URL).Equal("http://localhost:3000/")
}

func TestGetAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("exchange with configured client", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ExchangeCodeFunc: func(ctx context.Context, input *model.GetAccessTokenInput) (*model.AccessToken, error) {
				return &model.AccessToken{AccessToken: "gho_abc", TokenType: "bearer"}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithOAuthConfig(newOAuthConfig()))

		token, err := uc.GetAccessToken(ctx, "the-code", "the-state")
		gt.NoError(t, err)
		gt.V(t, token.Credential()).Equal(types.Credential("token gho_abc"))

		calls := gh.ExchangeCodeCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Input.ClientID).Equal(types.GitHubClientID("my-client"))
		gt.V(t, calls[0].Input.ClientSecret).Equal(types.GitHubClientSecret("my-secret"))
		gt.V(t, calls[0].Input.Code).Equal("the-code")
		gt.V(t, calls[0].Input.State).Equal("the-state")
	})

	t.Run("exchange failure", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ExchangeCodeFunc: func(ctx context.Context, input *model.GetAccessTokenInput) (*model.AccessToken, error) {
				return nil, types.ErrOAuthExchange
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithOAuthConfig(newOAuthConfig()))

		token, err := uc.GetAccessToken(ctx, "the-code", "the-state")
		gt.True(t, errors.Is(err, types.ErrOAuthExchange))
		gt.V(t, token == nil).Equal(true)
	})
}
