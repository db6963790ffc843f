package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	key := "TEST_ENV_VAR_SET"
	t.Setenv(key, "test_value")

	gt.V(t, testutil.GetEnvOrSkip(t, key)).Equal("test_value")
}

func TestGitHubAccountOrSkip(t *testing.T) {
	t.Setenv("TEST_GITHUB_TOKEN", "ghp_test")
	t.Setenv("TEST_GITHUB_USERNAME", "octocat")

	token, username := testutil.GitHubAccountOrSkip(t)
	gt.V(t, token).Equal(types.GitHubToken("ghp_test"))
	gt.V(t, username).Equal("octocat")
}
