package ghapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

const (
	DefaultAPIURL    = "https://api.github.com"
	DefaultWebURL    = "https://github.com"
	DefaultUserAgent = "octofork"
)

type Client struct {
	httpClient *http.Client
	github     *github.Client
	apiURL     string
	webURL     string
	userAgent  string
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient sets the client carrying every request. Its transport is
// wrapped, the given client is not modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// WithAPIURL sets the REST API base URL, e.g. https://ghe.example.com/api/v3
func WithAPIURL(apiURL string) Option {
	return func(x *Client) {
		x.apiURL = apiURL
	}
}

// WithWebURL sets the base URL hosting the OAuth endpoints.
func WithWebURL(webURL string) Option {
	return func(x *Client) {
		x.webURL = webURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(x *Client) {
		x.userAgent = userAgent
	}
}

func parseBaseURL(base string) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", base), goerr.V("error", err.Error()))
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "base URL must be http or https", goerr.V("url", base))
	}
	return u, nil
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		httpClient: http.DefaultClient,
		apiURL:     DefaultAPIURL,
		webURL:     DefaultWebURL,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.httpClient == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "HTTP client is nil")
	}

	client.apiURL = strings.TrimRight(client.apiURL, "/")
	client.webURL = strings.TrimRight(client.webURL, "/")
	if _, err := parseBaseURL(client.webURL); err != nil {
		return nil, err
	}
	// go-github resolves paths relative to BaseURL, which needs the slash
	baseURL, err := parseBaseURL(client.apiURL + "/")
	if err != nil {
		return nil, err
	}

	apiHTTPClient := *client.httpClient
	apiHTTPClient.Transport = &credentialTransport{
		base:    client.httpClient.Transport,
		apiHost: baseURL.Host,
	}

	client.github = github.NewClient(&apiHTTPClient)
	client.github.BaseURL = baseURL
	client.github.UserAgent = client.userAgent

	return client, nil
}

func (x *Client) APIURL() string {
	return x.apiURL
}

func (x *Client) WebURL() string {
	return x.webURL
}

// endpoint strips the query from rawURL so that it can be logged or put in
// error values without leaking OAuth parameters.
func endpoint(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "(invalid URL)"
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}

// validRef guards the request path. go-github resolves the path against the
// base URL, so "." or ".." would address another endpoint.
func validRef(owner, repo string) error {
	ref := model.RepoRef{Owner: owner, Name: repo}
	return ref.Validate()
}

func (x *Client) GetUser(ctx context.Context, cred types.Credential) (*model.User, error) {
	user, resp, err := x.github.Users.Get(withCredential(ctx, cred), "")
	if err != nil {
		return nil, goerr.Wrap(newAPIError(resp, err), "failed to get authenticated user")
	}
	return user, nil
}

// GetRepo reads owner/repo. A missing repository results in an error
// matching types.ErrNotFound.
func (x *Client) GetRepo(ctx context.Context, cred types.Credential, owner, repo string) (*model.Repository, error) {
	if err := validRef(owner, repo); err != nil {
		return nil, err
	}

	r, resp, err := x.github.Repositories.Get(withCredential(ctx, cred), owner, repo)
	if err != nil {
		return nil, goerr.Wrap(newAPIError(resp, err), "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return r, nil
}

// CreateFork requests a fork of owner/repo into the authenticated user's
// account. GitHub creates forks asynchronously and answers 202; the returned
// record may not be readable yet, and is nil if the response carries none.
func (x *Client) CreateFork(ctx context.Context, cred types.Credential, owner, repo string) (*model.Repository, error) {
	if err := validRef(owner, repo); err != nil {
		return nil, err
	}

	r, resp, err := x.github.Repositories.CreateFork(withCredential(ctx, cred), owner, repo, &github.RepositoryCreateForkOptions{})
	if resp != nil && resp.StatusCode == http.StatusAccepted {
		// go-github decodes the record of a 202 into r along with AcceptedError
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			return r, nil
		}
		logging.From(ctx).Debug("fork response has no repository record",
			slog.String("owner", owner),
			slog.String("repo", repo),
			slog.Any("error", err),
		)
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(newAPIError(resp, err), "failed to create fork",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return r, nil
}
