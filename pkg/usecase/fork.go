package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/m-mizutani/octofork/pkg/utils/retry"
)

func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// ForkRepo makes sure that TargetOwner has a fork of UpstreamOwner/RepoName
// and returns it. An existing repository of the same name under TargetOwner
// is adopted as is. Otherwise a fork is requested and then polled until it
// becomes readable, since GitHub creates forks asynchronously.
//
// It returns nil without calling GitHub if the input has no credential.
func (x *UseCase) ForkRepo(ctx context.Context, input *model.ForkRepoInput) (*model.Repository, error) {
	if input.Credential.IsEmpty() {
		return nil, nil
	}
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid fork request")
	}

	gh := x.clients.GitHub()
	logger := logging.From(ctx).With(
		slog.String("upstream", input.UpstreamOwner+"/"+input.RepoName),
		slog.String("target_owner", input.TargetOwner),
	)

	existing, err := gh.GetRepo(ctx, input.Credential, input.TargetOwner, input.RepoName)
	if err == nil {
		logger.Info("repository already exists in target account, adopting it",
			slog.String("full_name", existing.GetFullName()),
		)
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, goerr.Wrap(err, "failed to check existing fork",
			goerr.V("owner", input.TargetOwner),
			goerr.V("repo", input.RepoName),
		)
	}

	if _, err := gh.CreateFork(ctx, input.Credential, input.UpstreamOwner, input.RepoName); err != nil {
		return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrForkCreationFailed, err), "failed to request fork",
			goerr.V("owner", input.UpstreamOwner),
			goerr.V("repo", input.RepoName),
		)
	}
	logger.Info("fork requested, waiting for it to become visible",
		slog.Int("max_attempts", x.forkMaxAttempts),
		slog.Duration("interval", x.forkInterval),
	)

	fork, err := retry.PollUntil(ctx, x.forkMaxAttempts, func(ctx context.Context, attempt int) (*model.Repository, bool, error) {
		repo, err := gh.GetRepo(ctx, input.Credential, input.TargetOwner, input.RepoName)
		if err != nil {
			return nil, false, err
		}
		return repo, true, nil
	},
		retry.WithRecoverable(isNotFound),
		retry.WithInterval(x.forkInterval),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "fork did not become visible",
			goerr.V("owner", input.TargetOwner),
			goerr.V("repo", input.RepoName),
		)
	}

	logger.Info("fork is ready", slog.String("full_name", fork.GetFullName()))
	return fork, nil
}

// RepoExists reports whether owner/repo is readable. Failures other than
// 404 are logged and reported as false.
func (x *UseCase) RepoExists(ctx context.Context, owner, repo string) bool {
	ref := model.RepoRef{Owner: owner, Name: repo}
	if err := ref.Validate(); err != nil {
		logging.From(ctx).Warn("invalid repository name", slog.Any("error", err))
		return false
	}

	_, err := x.clients.GitHub().GetRepo(ctx, x.defaultCred, owner, repo)
	if err == nil {
		return true
	}
	if !isNotFound(err) {
		logging.From(ctx).Warn("failed to check repository existence",
			slog.String("repo", ref.FullName()),
			slog.Any("error", err),
		)
	}
	return false
}

// WaitForRepoToExist polls owner/repo until it is readable, at most
// maxAttempts times. The error wraps types.ErrRetriesExhausted if the
// repository did not appear.
func (x *UseCase) WaitForRepoToExist(ctx context.Context, owner, repo string, maxAttempts int) error {
	ref := model.RepoRef{Owner: owner, Name: repo}
	if err := ref.Validate(); err != nil {
		return goerr.Wrap(err, "invalid repository name")
	}

	gh := x.clients.GitHub()
	_, err := retry.PollUntil(ctx, maxAttempts, func(ctx context.Context, attempt int) (struct{}, bool, error) {
		if _, err := gh.GetRepo(ctx, x.defaultCred, owner, repo); err != nil {
			return struct{}{}, false, err
		}
		return struct{}{}, true, nil
	},
		retry.WithRecoverable(isNotFound),
		retry.WithInterval(x.forkInterval),
	)
	if err != nil {
		return goerr.Wrap(err, "repository did not become visible", goerr.V("repo", ref.FullName()))
	}
	return nil
}
