package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/errutil"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
)

// credentialFrom returns the Authorization header of the request. It is
// forwarded to GitHub as is.
func credentialFrom(r *http.Request) types.Credential {
	return types.Credential(r.Header.Get("Authorization"))
}

func errAuthRequired() error {
	return goerr.Wrap(types.ErrAuthenticationRequired, "Authorization header is required")
}

// queryInt returns the integer query parameter key, or 0 if absent.
func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid query parameter",
			goerr.V("key", key),
			goerr.V("value", v),
		)
	}
	return n, nil
}

func handleGetUser(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred := credentialFrom(r)
		if cred.IsEmpty() {
			writeError(w, r, "authentication required", errAuthRequired())
			return
		}

		user, err := uc.GetUserInformation(r.Context(), cred)
		if err != nil {
			writeError(w, r, "fail to get user", err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// handleListRepos streams repositories as newline delimited JSON. Pages are
// fetched from GitHub while the response is written. A failure before the
// first record results in an error response; a later failure truncates the
// stream.
func handleListRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cred := credentialFrom(r)
		if cred.IsEmpty() {
			writeError(w, r, "authentication required", errAuthRequired())
			return
		}

		input := &model.ListReposInput{Credential: cred}
		var limit int
		for key, dst := range map[string]*int{"page": &input.Page, "per_page": &input.PerPage, "limit": &limit} {
			n, err := queryInt(r, key)
			if err != nil {
				writeError(w, r, "invalid query parameter", err)
				return
			}
			*dst = n
		}

		seq := uc.GetRepos(r.Context(), input)
		if seq == nil {
			writeError(w, r, "authentication required", errAuthRequired())
			return
		}

		ctx := r.Context()
		logger := logging.From(ctx)
		encoder := json.NewEncoder(w)
		flusher, _ := w.(http.Flusher)

		var count int
		for repo, err := range seq {
			if err != nil {
				if count == 0 {
					writeError(w, r, "fail to list repositories", err)
				} else {
					errutil.HandleError(ctx, "repository listing was truncated", err)
				}
				return
			}

			if count == 0 {
				w.Header().Set("Content-Type", "application/x-ndjson")
				w.WriteHeader(http.StatusOK)
			}
			if err := encoder.Encode(repo); err != nil {
				logger.Warn("fail to write repository", slog.Any("error", err))
				return
			}
			if flusher != nil {
				flusher.Flush()
			}

			count++
			if limit > 0 && count >= limit {
				break
			}
		}

		if count == 0 {
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.WriteHeader(http.StatusOK)
		}
		logger.Debug("listed repositories", slog.Int("count", count))
	}
}

type forkAccepted struct {
	Status string `json:"status"`
	Repo   string `json:"repo"`
}

// handleForkRepo creates or adopts a fork of {owner}/{repo}. The fork goes to
// target_owner, or to the authenticated user if omitted. With wait=false the
// request is accepted immediately and completed in background.
func handleForkRepo(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cred := credentialFrom(r)
		if cred.IsEmpty() {
			writeError(w, r, "authentication required", errAuthRequired())
			return
		}

		input := &model.ForkRepoInput{
			Credential:    cred,
			UpstreamOwner: chi.URLParam(r, "owner"),
			RepoName:      chi.URLParam(r, "repo"),
			TargetOwner:   r.URL.Query().Get("target_owner"),
		}

		if input.TargetOwner == "" {
			user, err := uc.GetUserInformation(ctx, cred)
			if err != nil {
				writeError(w, r, "fail to get user", err)
				return
			}
			input.TargetOwner = user.GetLogin()
		}

		if err := input.Validate(); err != nil {
			writeError(w, r, "invalid fork request", err)
			return
		}

		if r.URL.Query().Get("wait") == "false" {
			bgCtx, cancel := DetachContext(ctx, cfg.backgroundTimeout)
			go func() {
				defer cancel()
				runForkRepo(bgCtx, uc, input)
			}()

			writeJSON(w, http.StatusAccepted, &forkAccepted{
				Status: "accepted",
				Repo:   input.TargetOwner + "/" + input.RepoName,
			})
			return
		}

		repo, err := uc.ForkRepo(ctx, input)
		if err != nil {
			writeError(w, r, "fail to fork repository", err)
			return
		}
		writeJSON(w, http.StatusOK, repo)
	}
}

// runForkRepo executes the fork in the provided context.
// This function is designed to be called from a background goroutine.
func runForkRepo(ctx context.Context, uc interfaces.UseCase, input *model.ForkRepoInput) {
	logger := logging.From(ctx).With(
		slog.String("upstream", input.UpstreamOwner+"/"+input.RepoName),
		slog.String("target_owner", input.TargetOwner),
	)
	logger.Info("Starting background fork")

	repo, err := uc.ForkRepo(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "background fork failed", err)
		return
	}
	logger.Info("Background fork completed", slog.String("full_name", repo.GetFullName()))
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

func handleRepoExists(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists := uc.RepoExists(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
		writeJSON(w, http.StatusOK, &existsResponse{Exists: exists})
	}
}
