package ghapi

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// Paginate returns a lazy sequence over all items of a paginated GET
// endpoint starting at firstURL. A page is requested only after every item
// of the previous page has been yielded, at the exact URL of the previous
// page's "next" link. The sequence ends after a page without "next".
//
// A failed request is yielded once as an error and ends the sequence, and so
// does a "next" link to another host or to a page already fetched. The
// credential is sent to the API host only. The sequence can be ranged over
// only once.
func Paginate[T any](ctx context.Context, client *Client, cred types.Credential, firstURL string) iter.Seq2[T, error] {
	var consumed atomic.Bool

	return func(yield func(T, error) bool) {
		var zero T
		if !consumed.CompareAndSwap(false, true) {
			yield(zero, goerr.Wrap(types.ErrSequenceConsumed, "paginated sequence can be ranged over only once",
				goerr.V("endpoint", endpoint(firstURL)),
			))
			return
		}

		first, err := url.Parse(firstURL)
		if err != nil {
			yield(zero, goerr.Wrap(types.ErrInvalidOption, "invalid URL", goerr.V("error", err.Error())))
			return
		}

		ctx := withCredential(ctx, cred)
		logger := logging.From(ctx)
		visited := map[string]struct{}{}
		nextURL := firstURL

		for page := 1; nextURL != ""; page++ {
			visited[nextURL] = struct{}{}

			req, err := client.github.NewRequest(http.MethodGet, nextURL, nil)
			if err != nil {
				yield(zero, goerr.Wrap(err, "failed to build page request",
					goerr.V("page", page),
					goerr.V("endpoint", endpoint(nextURL)),
				))
				return
			}

			var items []T
			resp, err := client.github.Do(ctx, req, &items)
			if err != nil {
				yield(zero, goerr.Wrap(newAPIError(resp, err), "failed to fetch page",
					goerr.V("page", page),
					goerr.V("endpoint", endpoint(nextURL)),
				))
				return
			}

			links := ParseLinks(resp.Header.Get("Link"))
			logger.Debug("fetched page",
				slog.Int("page", page),
				slog.Int("items", len(items)),
				slog.Bool("has_next", links.Has(RelNext)),
			)

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			nextURL = links.Next()
			if nextURL == "" {
				return
			}

			// Do not forward the credential to a host other than the one
			// the listing started on.
			next, err := url.Parse(nextURL)
			if err != nil || next.Host != first.Host {
				yield(zero, goerr.New("next link points to an unexpected location",
					goerr.V("page", page),
					goerr.V("next", endpoint(nextURL)),
				))
				return
			}

			if _, ok := visited[nextURL]; ok {
				yield(zero, goerr.New("next link points to a page already fetched",
					goerr.V("page", page),
					goerr.V("next", endpoint(nextURL)),
				))
				return
			}
		}
	}
}

// ListUserRepos lists public repositories of the authenticated user, sorted
// by full name, starting from page.
func (x *Client) ListUserRepos(ctx context.Context, cred types.Credential, page, perPage int) iter.Seq2[*model.Repository, error] {
	firstURL := fmt.Sprintf("%s/user/repos?type=public&sort=full_name&page=%d&per_page=%d", x.apiURL, page, perPage)
	return Paginate[*model.Repository](ctx, x, cred, firstURL)
}
