package cli

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// detectRepoFromGit returns owner/repo of the "origin" remote of the git
// repository in dir.
func detectRepoFromGit(dir string) (model.RepoRef, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return model.RepoRef{}, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return model.RepoRef{}, goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return model.RepoRef{}, goerr.New("no remote URL found")
	}

	return parseRemoteURL(remote.Config().URLs[0])
}

// parseRemoteURL extracts owner/repo from a git remote URL such as
// git@github.com:owner/repo.git or https://github.com/owner/repo.git.
// Enterprise hosts are accepted as well.
func parseRemoteURL(remoteURL string) (model.RepoRef, error) {
	var path string
	if u, err := url.Parse(remoteURL); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.Path
	} else if at := strings.Index(remoteURL, "@"); at >= 0 {
		// scp-like syntax: user@host:owner/repo.git
		_, after, found := strings.Cut(remoteURL[at+1:], ":")
		if !found {
			return model.RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "unsupported remote URL", goerr.V("url", remoteURL))
		}
		path = after
	} else {
		return model.RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "unsupported remote URL", goerr.V("url", remoteURL))
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if len(parts) < 2 {
		return model.RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "failed to parse owner/repo from remote URL", goerr.V("url", remoteURL))
	}

	ref := model.RepoRef{Owner: parts[len(parts)-2], Name: parts[len(parts)-1]}
	if err := ref.Validate(); err != nil {
		return model.RepoRef{}, goerr.Wrap(err, "invalid owner/repo in remote URL", goerr.V("url", remoteURL))
	}
	return ref, nil
}
