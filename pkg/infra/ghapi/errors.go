package ghapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// APIError is a non-2xx response from GitHub. The go-github error is kept as
// the cause.
type APIError struct {
	StatusCode int
	Message    string
	cause      error
}

// newAPIError converts the result of a go-github call. Errors that did not
// come with a non-2xx response are returned as is.
func newAPIError(resp *github.Response, err error) error {
	if err == nil || resp == nil || resp.Response == nil {
		return err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return err
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, cause: err}

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	switch {
	case errors.As(err, &errResp):
		apiErr.Message = errResp.Message
	case errors.As(err, &rateErr):
		apiErr.Message = rateErr.Message
	}
	return apiErr
}

func (x *APIError) Error() string {
	if x.Message != "" {
		return fmt.Sprintf("github: HTTP %d: %s", x.StatusCode, x.Message)
	}
	return fmt.Sprintf("github: HTTP %d", x.StatusCode)
}

func (x *APIError) Unwrap() error {
	return x.cause
}

// Is makes a 404 response match types.ErrNotFound.
func (x *APIError) Is(target error) bool {
	return target == types.ErrNotFound && x.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 response from GitHub.
func IsNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// StatusCode returns the HTTP status of the GitHub error in err, or 0 if err
// did not come from a GitHub response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
