package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"
	"iter"

	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// GitHub is the REST API surface used by the use cases. An empty credential
// sends the request without an Authorization header.
type GitHub interface {
	ExchangeCode(ctx context.Context, input *model.GetAccessTokenInput) (*model.AccessToken, error)
	GetUser(ctx context.Context, cred types.Credential) (*model.User, error)
	ListUserRepos(ctx context.Context, cred types.Credential, page, perPage int) iter.Seq2[*model.Repository, error]
	GetRepo(ctx context.Context, cred types.Credential, owner, repo string) (*model.Repository, error)
	CreateFork(ctx context.Context, cred types.Credential, owner, repo string) (*model.Repository, error)
}
