package cli_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/cli"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

func TestParseRemoteURL(t *testing.T) {
	testCases := map[string]struct {
		url    string
		expect model.RepoRef
		fail   bool
	}{
		"ssh":              {url: "git@github.com:jdoe/foo.git", expect: model.RepoRef{Owner: "jdoe", Name: "foo"}},
		"ssh without .git": {url: "git@github.com:jdoe/foo", expect: model.RepoRef{Owner: "jdoe", Name: "foo"}},
		"https":            {url: "https://github.com/jdoe/foo.git", expect: model.RepoRef{Owner: "jdoe", Name: "foo"}},
		"ssh scheme":       {url: "ssh://git@github.com/jdoe/foo.git", expect: model.RepoRef{Owner: "jdoe", Name: "foo"}},
		"enterprise":       {url: "https://ghe.example.com/team/tool.git", expect: model.RepoRef{Owner: "team", Name: "tool"}},
		"trailing slash":   {url: "https://github.com/jdoe/foo/", expect: model.RepoRef{Owner: "jdoe", Name: "foo"}},
		"no repo":          {url: "https://github.com/jdoe", fail: true},
		"local path":       {url: "/srv/git/foo.git", fail: true},
		"scp without path": {url: "git@github.com", fail: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ref, err := cli.ParseRemoteURLForTest(tc.url)
			if tc.fail {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.V(t, ref).Equal(tc.expect)
		})
	}
}

func TestParseRepoArg(t *testing.T) {
	ref, err := cli.ParseRepoArgForTest("jdoe/foo")
	gt.NoError(t, err)
	gt.V(t, ref.FullName()).Equal("jdoe/foo")

	_, err = cli.ParseRepoArgForTest("jdoe")
	gt.True(t, errors.Is(err, types.ErrValidationFailed))

	_, err = cli.ParseRepoArgForTest("jdoe/foo/bar")
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestToCredential(t *testing.T) {
	gt.V(t, cli.ToCredentialForTest("abc")).Equal(types.Credential("token abc"))
	gt.V(t, cli.ToCredentialForTest("Bearer abc")).Equal(types.Credential("Bearer abc"))
	gt.V(t, cli.ToCredentialForTest("")).Equal(types.Credential(""))
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	gt.V(t, gt.R1(cli.ResolveFormatForTest("auto", &buf)).NoError(t)).Equal("json")
	gt.V(t, gt.R1(cli.ResolveFormatForTest("text", &buf)).NoError(t)).Equal("text")

	f := gt.R1(os.CreateTemp(t.TempDir(), "out")).NoError(t)
	defer f.Close()
	gt.V(t, gt.R1(cli.ResolveFormatForTest("auto", f)).NoError(t)).Equal("json")

	_, err := cli.ResolveFormatForTest("yaml", &buf)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
