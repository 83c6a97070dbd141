package testutil

import (
	"os"
	"testing"

	"github.com/m-mizutani/octofork/pkg/domain/types"
)

// GitHubTarget is a live repository used by integration tests.
type GitHubTarget struct {
	Token string
	Owner string
	Repo  string
}

// Credential returns the token as an Authorization header value.
func (x GitHubTarget) Credential() types.Credential {
	return types.Credential("token " + x.Token)
}

// LoadGitHubTarget reads TEST_GITHUB_TOKEN, TEST_GITHUB_OWNER and
// TEST_GITHUB_REPO. The test is skipped unless all of them are set.
func LoadGitHubTarget(t testing.TB) GitHubTarget {
	t.Helper()
	return GitHubTarget{
		Token: envOrSkip(t, "TEST_GITHUB_TOKEN"),
		Owner: envOrSkip(t, "TEST_GITHUB_OWNER"),
		Repo:  envOrSkip(t, "TEST_GITHUB_REPO"),
	}
}

func envOrSkip(t testing.TB, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("%s is not set", key)
	}
	return value
}
