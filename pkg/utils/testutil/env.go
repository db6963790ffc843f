package testutil

import (
	"os"
	"testing"

	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GitHubAccountOrSkip returns the token and username used by live API tests.
func GitHubAccountOrSkip(t *testing.T) (types.GitHubToken, string) {
	t.Helper()
	token := GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	username := GetEnvOrSkip(t, "TEST_GITHUB_USERNAME")
	return types.GitHubToken(token), username
}
