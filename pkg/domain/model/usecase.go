package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// GitHub owner and repository names; a "/" would change the request path.
var ptnValidName = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

func validateName(field, name string) error {
	if name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is empty", goerr.V("field", field))
	}
	// "." and ".." are path segments, not names
	if !ptnValidName.MatchString(name) || name == "." || name == ".." {
		return goerr.Wrap(types.ErrValidationFailed, "invalid name",
			goerr.V("field", field),
			goerr.V("name", name),
		)
	}
	return nil
}

type ForkRepoInput struct {
	Credential    types.Credential
	UpstreamOwner string
	RepoName      string
	TargetOwner   string
}

func (x *ForkRepoInput) Validate() error {
	if err := validateName("upstream_owner", x.UpstreamOwner); err != nil {
		return err
	}
	if err := validateName("repo_name", x.RepoName); err != nil {
		return err
	}
	if err := validateName("target_owner", x.TargetOwner); err != nil {
		return err
	}
	return nil
}

type RepoRef struct {
	Owner string
	Name  string
}

func (x RepoRef) Validate() error {
	if err := validateName("owner", x.Owner); err != nil {
		return err
	}
	return validateName("name", x.Name)
}

func (x RepoRef) FullName() string {
	return x.Owner + "/" + x.Name
}

const (
	DefaultPage    = 1
	DefaultPerPage = 100
)

type ListReposInput struct {
	Credential types.Credential
	Page       int
	PerPage    int
}

// Normalize replaces out of range paging values with defaults.
func (x *ListReposInput) Normalize() {
	if x.Page < 1 {
		x.Page = DefaultPage
	}
	if x.PerPage < 1 {
		x.PerPage = DefaultPerPage
	}
}
