package ghapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

type ctxCredentialKey struct{}

// withCredential makes every GitHub API request sent with ctx carry cred as
// its Authorization header.
func withCredential(ctx context.Context, cred types.Credential) context.Context {
	return context.WithValue(ctx, ctxCredentialKey{}, cred)
}

// credentialTransport sets the caller's credential on requests to the API
// host only, so that a redirect or a foreign link never receives it.
type credentialTransport struct {
	base    http.RoundTripper
	apiHost string
}

func (x *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	cred, _ := ctx.Value(ctxCredentialKey{}).(types.Credential)
	authorized := !cred.IsEmpty() && req.URL.Host == x.apiHost

	logging.From(ctx).Debug("sending GitHub request",
		slog.String("method", req.Method),
		slog.String("endpoint", endpoint(req.URL.String())),
		slog.Bool("authorized", authorized),
	)

	if authorized {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", string(cred))
	}

	base := x.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
