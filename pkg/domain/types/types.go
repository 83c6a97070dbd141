package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubClientID     string
	GitHubClientSecret string
	RequestID          string
)

// Credential is an opaque authorization value forwarded verbatim in the
// Authorization header, e.g. "token xxxx" or "Bearer xxxx".
type Credential string

// IsEmpty returns true if no credential is supplied.
func (x Credential) IsEmpty() bool {
	return x == ""
}

func (x Credential) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x Credential) String() string {
	return "***********"
}

func (x GitHubClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubClientSecret) String() string {
	return "***********"
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}
