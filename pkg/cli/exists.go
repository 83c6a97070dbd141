package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/semaphore"
)

type existsResult struct {
	ref    model.RepoRef
	exists bool
	err    error
}

func checkRepo(ctx context.Context, uc interfaces.UseCase, ref model.RepoRef, wait bool, maxAttempts int) existsResult {
	if !wait {
		return existsResult{ref: ref, exists: uc.RepoExists(ctx, ref.Owner, ref.Name)}
	}

	err := uc.WaitForRepoToExist(ctx, ref.Owner, ref.Name, maxAttempts)
	switch {
	case err == nil:
		return existsResult{ref: ref, exists: true}
	case errors.Is(err, types.ErrRetriesExhausted):
		return existsResult{ref: ref}
	default:
		return existsResult{ref: ref, err: err}
	}
}

func existsCommand() *cli.Command {
	var (
		token    string
		wait     bool
		parallel int64

		github  config.GitHub
		fork    config.Fork
		httpCfg config.HTTP
	)

	return &cli.Command{
		Name:      "exists",
		Usage:     "Check that repositories exist. Fails if any of them does not",
		ArgsUsage: "[owner/repo ...]",
		Flags: slice.Flatten([]cli.Flag{
			tokenFlag(&token, false),
			&cli.BoolFlag{
				Name:        "wait",
				Usage:       "Poll until the repository appears, bounded by --fork-max-attempts",
				Destination: &wait,
			},
			&cli.Int64Flag{
				Name:        "parallel",
				Usage:       "Number of repositories checked concurrently",
				Value:       4,
				Destination: &parallel,
			},
		}, github.Flags(), fork.Flags(), httpCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if parallel < 1 {
				return goerr.Wrap(types.ErrInvalidOption, "parallel must be positive", goerr.V("parallel", parallel))
			}

			args := c.Args().Slice()
			if len(args) == 0 {
				args = []string{""}
			}
			refs := make([]model.RepoRef, len(args))
			for i, arg := range args {
				ref, err := parseRepoArg(arg)
				if err != nil {
					return err
				}
				refs[i] = ref
			}

			clients, err := newClients(&github, &httpCfg)
			if err != nil {
				return err
			}
			options := fork.Options()
			if token != "" {
				options = append(options, usecase.WithDefaultCredential(toCredential(token)))
			}
			uc := usecase.New(clients, options...)

			results := make([]existsResult, len(refs))
			sem := semaphore.NewWeighted(parallel)
			var wg sync.WaitGroup
			for i, ref := range refs {
				if err := sem.Acquire(ctx, 1); err != nil {
					wg.Wait()
					return goerr.Wrap(err, "interrupted")
				}
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer sem.Release(1)
					results[i] = checkRepo(ctx, uc, ref, wait, fork.MaxAttempts())
				}()
			}
			wg.Wait()

			w := writerOf(c)
			var missing []string
			for _, r := range results {
				if r.err != nil {
					return goerr.Wrap(r.err, "failed to check repository", goerr.V("repo", r.ref.FullName()))
				}
				if _, err := fmt.Fprintf(w, "%s\t%t\n", r.ref.FullName(), r.exists); err != nil {
					return goerr.Wrap(err, "failed to write result")
				}
				if !r.exists {
					missing = append(missing, r.ref.FullName())
				}
			}

			if len(missing) > 0 {
				return goerr.Wrap(types.ErrNotFound, "repository does not exist", goerr.V("repos", missing))
			}
			logging.From(ctx).Debug("all repositories exist", slog.Int("count", len(refs)))
			return nil
		},
	}
}
