package model

import (
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

type OAuthConfig struct {
	ClientID     types.GitHubClientID
	ClientSecret types.GitHubClientSecret `masq:"secret"`
	CallbackURL  string
	HomeURL      string
	Scopes       []string
}

// RedirectURL is returned by login and logout. The caller redirects the
// browser to URL.
type RedirectURL struct {
	URL string `json:"url"`
}

// AccessToken is the payload of the OAuth access token endpoint.
type AccessToken struct {
	AccessToken string `json:"access_token" masq:"secret"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`

	// Set by GitHub instead of an HTTP error status when the exchange fails.
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Credential renders the token in the form forwarded to the REST API.
func (x *AccessToken) Credential() types.Credential {
	if x == nil || x.AccessToken == "" {
		return ""
	}
	return types.Credential("token " + x.AccessToken)
}

type GetAccessTokenInput struct {
	ClientID     types.GitHubClientID
	ClientSecret types.GitHubClientSecret `masq:"secret"`
	Code         string
	State        string
}
