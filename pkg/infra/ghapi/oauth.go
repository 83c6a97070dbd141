package ghapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/safe"
)

const maxTokenResponseSize = 1 << 20

// ExchangeCode exchanges an authorization code for an access token. The
// token endpoint lives on the web host, outside of the REST API.
func (x *Client) ExchangeCode(ctx context.Context, input *model.GetAccessTokenInput) (*model.AccessToken, error) {
	if input.Code == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "code is required")
	}

	q := url.Values{}
	q.Set("client_id", string(input.ClientID))
	q.Set("client_secret", string(input.ClientSecret))
	q.Set("code", input.Code)
	q.Set("state", input.State)
	tokenURL := x.webURL + "/login/oauth/access_token"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create access token request", goerr.V("endpoint", tokenURL))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", x.userAgent)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request access token", goerr.V("endpoint", tokenURL))
	}
	defer safe.CloseBody(ctx, resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read access token response", goerr.V("status", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("access token endpoint returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var token model.AccessToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, goerr.Wrap(err, "failed to decode access token response")
	}
	if token.Error != "" {
		return nil, goerr.Wrap(types.ErrOAuthExchange, "access token request was rejected",
			goerr.V("error", token.Error),
			goerr.V("description", token.ErrorDescription),
		)
	}
	if token.AccessToken == "" {
		return nil, goerr.Wrap(types.ErrOAuthExchange, "access token response has no token")
	}

	return &token, nil
}
