package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// Login returns the GitHub authorize page URL the browser is sent to.
func (x *UseCase) Login(ctx context.Context) (*model.RedirectURL, error) {
	if x.oauth.ClientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub OAuth client ID is not configured")
	}

	u, err := url.Parse(strings.TrimRight(x.webURL, "/") + "/login/oauth/authorize")
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub web URL", goerr.V("web_url", x.webURL))
	}

	state := x.newState()

	q := u.Query()
	q.Set("client_id", string(x.oauth.ClientID))
	if x.oauth.CallbackURL != "" {
		q.Set("redirect_uri", x.oauth.CallbackURL)
	}
	if len(x.oauth.Scopes) > 0 {
		q.Set("scope", strings.Join(x.oauth.Scopes, " "))
	}
	q.Set("state", state)
	u.RawQuery = q.Encode()

	logging.From(ctx).Debug("issued OAuth authorize URL", slog.String("state", state))

	return &model.RedirectURL{URL: u.String()}, nil
}

// Logout returns the home page URL. No session is held on this side.
func (x *UseCase) Logout(ctx context.Context) *model.RedirectURL {
	return &model.RedirectURL{URL: strings.TrimRight(x.oauth.HomeURL, "/") + "/"}
}

func (x *UseCase) GetAccessToken(ctx context.Context, code, state string) (*model.AccessToken, error) {
	token, err := x.clients.GitHub().ExchangeCode(ctx, &model.GetAccessTokenInput{
		ClientID:     x.oauth.ClientID,
		ClientSecret: x.oauth.ClientSecret,
		Code:         code,
		State:        state,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to exchange OAuth code")
	}

	logging.From(ctx).Info("obtained GitHub access token",
		slog.String("token_type", token.TokenType),
		slog.String("scope", token.Scope),
	)
	return token, nil
}
