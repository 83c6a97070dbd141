package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/m-mizutani/octofork/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func forkCommand() *cli.Command {
	var (
		token       string
		targetOwner string
		format      string

		github  config.GitHub
		fork    config.Fork
		httpCfg config.HTTP
	)

	return &cli.Command{
		Name:      "fork",
		Usage:     "Fork a repository, or adopt the fork if it already exists",
		ArgsUsage: "[upstream-owner/repo]",
		Flags: slice.Flatten([]cli.Flag{
			tokenFlag(&token, true),
			&cli.StringFlag{
				Name:        "target-owner",
				Usage:       "Account to fork into (default: the authenticated user)",
				Sources:     cli.EnvVars("OCTOFORK_TARGET_OWNER"),
				Destination: &targetOwner,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format [auto|json|text]",
				Value:       formatAuto,
				Destination: &format,
			},
		}, github.Flags(), fork.Flags(), httpCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			w := writerOf(c)
			outFormat, err := resolveFormat(format, w)
			if err != nil {
				return err
			}

			upstream, err := parseRepoArg(c.Args().First())
			if err != nil {
				return err
			}

			clients, err := newClients(&github, &httpCfg)
			if err != nil {
				return err
			}
			uc := usecase.New(clients, fork.Options()...)
			cred := toCredential(token)

			if targetOwner == "" {
				user, err := uc.GetUserInformation(ctx, cred)
				if err != nil {
					return err
				}
				targetOwner = user.GetLogin()
			}

			logging.From(ctx).Info("forking repository",
				slog.String("upstream", upstream.FullName()),
				slog.String("target_owner", targetOwner),
				slog.Any("fork", fork),
			)

			repo, err := uc.ForkRepo(ctx, &model.ForkRepoInput{
				Credential:    cred,
				UpstreamOwner: upstream.Owner,
				RepoName:      upstream.Name,
				TargetOwner:   targetOwner,
			})
			if err != nil {
				return err
			}
			if repo == nil {
				return goerr.New("no repository returned", goerr.V("upstream", upstream.FullName()))
			}

			return writeRepo(w, outFormat, repo)
		},
	}
}
