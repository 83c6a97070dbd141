package config

import (
	"log/slog"
	"net/http"

	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

var DefaultScopes = []string{"repo", "read:user", "user:email"}

type GitHub struct {
	clientID     types.GitHubClientID
	clientSecret types.GitHubClientSecret `masq:"secret"`
	callbackURL  string
	homeURL      string
	apiURL       string
	webURL       string
	scopes       []string
	userAgent    string
}

// Flags returns flags of the GitHub REST API endpoint. They are required by
// every command talking to GitHub.
func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       ghapi.DefaultAPIURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-web-url",
			Usage:       "GitHub web base URL hosting OAuth endpoints",
			Category:    "GitHub",
			Value:       ghapi.DefaultWebURL,
			Destination: &x.webURL,
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_WEB_URL"),
		},
		&cli.StringFlag{
			Name:        "github-user-agent",
			Usage:       "User-Agent header sent to GitHub",
			Category:    "GitHub",
			Value:       ghapi.DefaultUserAgent,
			Destination: &x.userAgent,
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_USER_AGENT"),
		},
	}
}

// OAuthFlags returns flags of the GitHub OAuth App.
func (x *GitHub) OAuthFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth App client ID",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth App client secret",
			Category:    "GitHub OAuth",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-callback-url",
			Usage:       "OAuth callback URL registered in the OAuth App",
			Category:    "GitHub OAuth",
			Destination: &x.callbackURL,
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_CALLBACK_URL"),
		},
		&cli.StringFlag{
			Name:        "home-url",
			Usage:       "URL the browser is sent to after logout",
			Category:    "GitHub OAuth",
			Value:       "http://localhost:3000",
			Destination: &x.homeURL,
			Sources:     cli.EnvVars("OCTOFORK_HOME_URL"),
		},
		&cli.StringSliceFlag{
			Name:        "github-scope",
			Usage:       "OAuth scopes requested on login",
			Category:    "GitHub OAuth",
			Value:       DefaultScopes,
			Destination: &x.scopes,
			Sources:     cli.EnvVars("OCTOFORK_GITHUB_SCOPES"),
		},
	}
}

func (x *GitHub) OAuthConfig() model.OAuthConfig {
	return model.OAuthConfig{
		ClientID:     x.clientID,
		ClientSecret: x.clientSecret,
		CallbackURL:  x.callbackURL,
		HomeURL:      x.homeURL,
		Scopes:       x.scopes,
	}
}

func (x *GitHub) WebURL() string {
	return x.webURL
}

// NewClient creates a GitHub REST client sending requests via httpClient.
func (x *GitHub) NewClient(httpClient *http.Client) (*ghapi.Client, error) {
	return ghapi.New(
		ghapi.WithHTTPClient(httpClient),
		ghapi.WithAPIURL(x.apiURL),
		ghapi.WithWebURL(x.webURL),
		ghapi.WithUserAgent(x.userAgent),
	)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", string(x.clientID)),
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.String("CallbackURL", x.callbackURL),
		slog.String("HomeURL", x.homeURL),
		slog.String("APIURL", x.apiURL),
		slog.String("WebURL", x.webURL),
		slog.Any("Scopes", x.scopes),
	)
}
