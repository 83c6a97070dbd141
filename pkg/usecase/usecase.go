package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/infra"
	"github.com/m-mizutani/octofork/pkg/infra/ghapi"
)

const (
	DefaultForkMaxAttempts = 10
	DefaultForkInterval    = 2 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	oauth    model.OAuthConfig
	webURL   string
	newState func() string

	forkMaxAttempts int
	forkInterval    time.Duration

	// used by RepoExists and WaitForRepoToExist
	defaultCred types.Credential
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithOAuthConfig(cfg model.OAuthConfig) Option {
	return func(x *UseCase) {
		x.oauth = cfg
	}
}

// WithWebURL sets the base URL of the OAuth authorize page.
func WithWebURL(webURL string) Option {
	return func(x *UseCase) {
		x.webURL = webURL
	}
}

// WithStateGenerator replaces the generator of the OAuth state parameter.
func WithStateGenerator(f func() string) Option {
	return func(x *UseCase) {
		x.newState = f
	}
}

func WithForkMaxAttempts(n int) Option {
	return func(x *UseCase) {
		x.forkMaxAttempts = n
	}
}

func WithForkInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.forkInterval = d
	}
}

// WithDefaultCredential sets the credential used by the existence check.
// Without it the check is unauthenticated.
func WithDefaultCredential(cred types.Credential) Option {
	return func(x *UseCase) {
		x.defaultCred = cred
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		webURL:          ghapi.DefaultWebURL,
		newState:        uuid.NewString,
		forkMaxAttempts: DefaultForkMaxAttempts,
		forkInterval:    DefaultForkInterval,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
