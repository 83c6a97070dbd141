package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/utils/testutil"
)

func TestLoadGitHubTarget(t *testing.T) {
	t.Setenv("TEST_GITHUB_TOKEN", "abc")
	t.Setenv("TEST_GITHUB_OWNER", "jdoe")
	t.Setenv("TEST_GITHUB_REPO", "foo")

	target := testutil.LoadGitHubTarget(t)
	gt.V(t, target.Owner).Equal("jdoe")
	gt.V(t, target.Repo).Equal("foo")
	gt.V(t, target.Credential()).Equal(types.Credential("token abc"))
}
