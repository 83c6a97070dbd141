package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/infra"
	"github.com/m-mizutani/octofork/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func loginURLCommand() *cli.Command {
	var github config.GitHub

	return &cli.Command{
		Name:  "login-url",
		Usage: "Print the GitHub OAuth authorize URL",
		Flags: slice.Flatten(github.Flags(), github.OAuthFlags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New(),
				usecase.WithOAuthConfig(github.OAuthConfig()),
				usecase.WithWebURL(github.WebURL()),
			)

			redirect, err := uc.Login(ctx)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(writerOf(c), redirect.URL); err != nil {
				return goerr.Wrap(err, "failed to write URL")
			}
			return nil
		},
	}
}
