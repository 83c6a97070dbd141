package usecase

import (
	"context"
	"iter"
	"log/slog"

	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// GetRepos returns a lazy sequence of the user's public repositories. Pages
// are fetched while the sequence is consumed. It returns nil if the input
// has no credential.
func (x *UseCase) GetRepos(ctx context.Context, input *model.ListReposInput) iter.Seq2[*model.Repository, error] {
	if input == nil || input.Credential.IsEmpty() {
		return nil
	}

	params := *input
	params.Normalize()

	logging.From(ctx).Debug("listing repositories",
		slog.Int("page", params.Page),
		slog.Int("per_page", params.PerPage),
	)

	return x.clients.GitHub().ListUserRepos(ctx, params.Credential, params.Page, params.PerPage)
}
