package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatText = "text"
)

// resolveFormat returns text for a terminal and JSON otherwise when format
// is auto.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case formatJSON, formatText:
		return format, nil
	case formatAuto, "":
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return formatText, nil
		}
		return formatJSON, nil
	default:
		return "", goerr.Wrap(types.ErrInvalidOption, "invalid output format, should be 'auto', 'json' or 'text'", goerr.V("value", format))
	}
}

func writeRepo(w io.Writer, format string, repo *model.Repository) error {
	if format == formatJSON {
		if err := json.NewEncoder(w).Encode(repo); err != nil {
			return goerr.Wrap(err, "failed to write repository")
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s\t%s\n", repo.GetFullName(), repo.GetHTMLURL()); err != nil {
		return goerr.Wrap(err, "failed to write repository")
	}
	return nil
}

func reposCommand() *cli.Command {
	var (
		token   string
		page    int64
		perPage int64
		limit   int64
		format  string

		github  config.GitHub
		httpCfg config.HTTP
	)

	return &cli.Command{
		Name:  "repos",
		Usage: "List public repositories of the authenticated user",
		Flags: slice.Flatten([]cli.Flag{
			tokenFlag(&token, true),
			&cli.Int64Flag{
				Name:        "page",
				Usage:       "First page to fetch",
				Value:       model.DefaultPage,
				Destination: &page,
			},
			&cli.Int64Flag{
				Name:        "per-page",
				Usage:       "Number of repositories per page",
				Value:       model.DefaultPerPage,
				Destination: &perPage,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Stop after this number of repositories (0 is no limit)",
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format [auto|json|text]",
				Value:       formatAuto,
				Destination: &format,
			},
		}, github.Flags(), httpCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			w := writerOf(c)
			outFormat, err := resolveFormat(format, w)
			if err != nil {
				return err
			}

			clients, err := newClients(&github, &httpCfg)
			if err != nil {
				return err
			}
			uc := usecase.New(clients)

			seq := uc.GetRepos(ctx, &model.ListReposInput{
				Credential: toCredential(token),
				Page:       int(page),
				PerPage:    int(perPage),
			})
			if seq == nil {
				return goerr.Wrap(types.ErrAuthenticationRequired, "token is required")
			}

			var count int64
			for repo, err := range seq {
				if err != nil {
					return goerr.Wrap(err, "failed to list repositories", goerr.V("listed", count))
				}
				if err := writeRepo(w, outFormat, repo); err != nil {
					return err
				}
				count++
				if limit > 0 && count >= limit {
					break
				}
			}

			logging.From(ctx).Debug("listed repositories", slog.Int64("count", count))
			return nil
		},
	}
}
