package cli

import (
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/cli/config"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/infra"
	"github.com/urfave/cli/v3"
)

func tokenFlag(dst *string, required bool) cli.Flag {
	return &cli.StringFlag{
		Name:        "token",
		Aliases:     []string{"t"},
		Usage:       "GitHub token, sent as 'token <value>' unless it already has a scheme",
		Category:    "GitHub",
		Sources:     cli.EnvVars("OCTOFORK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		Destination: dst,
		Required:    required,
	}
}

// toCredential renders a token into an Authorization header value. A value
// that already carries a scheme, e.g. "Bearer xxx", is kept as is.
func toCredential(token string) types.Credential {
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return types.Credential(token)
	}
	return types.Credential("token " + token)
}

// parseRepoArg parses "owner/repo". If arg is empty, the origin remote of
// the git repository in the working directory is used.
func parseRepoArg(arg string) (model.RepoRef, error) {
	if arg == "" {
		return detectRepoFromGit(".")
	}

	owner, name, found := strings.Cut(arg, "/")
	if !found {
		return model.RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "repository must be owner/repo", goerr.V("arg", arg))
	}
	ref := model.RepoRef{Owner: owner, Name: name}
	if err := ref.Validate(); err != nil {
		return model.RepoRef{}, err
	}
	return ref, nil
}

func newClients(gh *config.GitHub, httpCfg *config.HTTP) (*infra.Clients, error) {
	client, err := gh.NewClient(httpCfg.NewClient())
	if err != nil {
		return nil, err
	}
	return infra.New(infra.WithGitHub(client)), nil
}

func writerOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
