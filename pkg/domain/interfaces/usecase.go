package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"iter"

	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

type UseCase interface {
	Login(ctx context.Context) (*model.RedirectURL, error)
	Logout(ctx context.Context) *model.RedirectURL
	GetAccessToken(ctx context.Context, code, state string) (*model.AccessToken, error)
	GetUserInformation(ctx context.Context, cred types.Credential) (*model.User, error)
	GetRepos(ctx context.Context, input *model.ListReposInput) iter.Seq2[*model.Repository, error]
	ForkRepo(ctx context.Context, input *model.ForkRepoInput) (*model.Repository, error)
	RepoExists(ctx context.Context, owner, repo string) bool
	WaitForRepoToExist(ctx context.Context, owner, repo string, maxAttempts int) error
}
