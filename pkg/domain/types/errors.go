package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrNotFound is matched by 404 responses from the GitHub API.
	ErrNotFound = goerr.New("not found")

	ErrAuthenticationRequired = goerr.New("authentication required")
	ErrOAuthExchange          = goerr.New("oauth code exchange failed")
	ErrForkCreationFailed     = goerr.New("fork creation failed")
	ErrRetriesExhausted       = goerr.New("retries exhausted")
	ErrSequenceConsumed       = goerr.New("sequence already consumed")
)
