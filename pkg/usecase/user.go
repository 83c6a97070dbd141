package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// GetUserInformation returns the profile of the credential's owner. It
// returns nil without calling GitHub if cred is empty.
func (x *UseCase) GetUserInformation(ctx context.Context, cred types.Credential) (*model.User, error) {
	if cred.IsEmpty() {
		return nil, nil
	}

	user, err := x.clients.GitHub().GetUser(ctx, cred)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get GitHub user")
	}
	return user, nil
}
