package cli_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/cli"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// fakeGitHub serves one List holding spf13/cobra and two starred repositories.
type fakeGitHub struct {
	mu         sync.Mutex
	operations []string
	variables  []map[string]any
}

func (x *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/user/starred" {
		_, _ = io.WriteString(w, `[
			{"node_id":"R_cobra","full_name":"spf13/cobra","name":"cobra","owner":{"login":"spf13"},
			 "html_url":"https://github.com/spf13/cobra","language":"Go","stargazers_count":40000},
			{"node_id":"R_go","full_name":"golang/go","name":"go","owner":{"login":"golang"},
			 "html_url":"https://github.com/golang/go","language":"Go","stargazers_count":120000}
		]`)
		return
	}

	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.variables = append(x.variables, req.Variables)

	switch {
	case strings.Contains(req.Query, "query FetchUserLists"):
		x.operations = append(x.operations, "FetchUserLists")
		_, _ = io.WriteString(w, `{"data":{"user":{"lists":{
			"totalCount":1,
			"pageInfo":{"hasNextPage":false,"endCursor":"1"},
			"nodes":[{"id":"UL_tools","name":"Tools","description":"CLI tools","isPrivate":false,"slug":"tools",
				"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z","lastAddedAt":null,
				"items":{"totalCount":1}}]}}}}`)
	case strings.Contains(req.Query, "query FetchListItems"):
		x.operations = append(x.operations, "FetchListItems")
		_, _ = io.WriteString(w, `{"data":{"node":{"items":{
			"pageInfo":{"hasNextPage":false,"endCursor":null},
			"nodes":[{"__typename":"Repository","name":"cobra","url":"https://github.com/spf13/cobra",
				"isPrivate":false,"description":"CLI library","stargazerCount":40000,"owner":{"login":"spf13"}}]}}}}`)
	case strings.Contains(req.Query, "mutation CreateUserList"):
		x.operations = append(x.operations, "CreateUserList")
		resp := map[string]any{"data": map[string]any{"createUserList": map[string]any{
			"list": map[string]any{
				"id":          "UL_new",
				"name":        req.Variables["name"],
				"description": req.Variables["description"],
				"isPrivate":   req.Variables["isPrivate"],
				"slug":        "new",
				"createdAt":   "2024-01-01T00:00:00Z",
				"updatedAt":   "2024-01-01T00:00:00Z",
			},
			"viewer": map[string]any{"login": "octocat"},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	default:
		x.operations = append(x.operations, "unexpected")
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (x *fakeGitHub) lastVariables() map[string]any {
	x.mu.Lock()
	defer x.mu.Unlock()
	if len(x.variables) == 0 {
		return nil
	}
	return x.variables[len(x.variables)-1]
}

func (x *fakeGitHub) called() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.operations...)
}

func setupCLI(t *testing.T) (*fakeGitHub, []string) {
	t.Helper()
	t.Setenv("STARDUST_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_USERNAME", "")

	fake := &fakeGitHub{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return fake, []string{
		"--github-token", "test-token",
		"--github-username", "octocat",
		"--github-api-url", srv.URL,
		"--github-graphql-url", srv.URL + "/graphql",
	}
}

func TestListsCommand(t *testing.T) {
	fake, ghArgs := setupCLI(t)

	var out strings.Builder
	err := cli.New(cli.WithOutput(&out)).Run(append([]string{"stardust", "lists", "--details"}, ghArgs...))
	gt.NoError(t, err)

	gt.S(t, out.String()).Contains("octocat has 1 Lists")
	gt.S(t, out.String()).Contains("Tools")
	gt.S(t, out.String()).Contains("spf13/cobra")
	gt.V(t, fake.called()).Equal([]string{"FetchUserLists", "FetchListItems"})
}

func TestCreateListCommand(t *testing.T) {
	t.Run("private by default", func(t *testing.T) {
		fake, ghArgs := setupCLI(t)

		var out strings.Builder
		args := append([]string{"stardust", "lists", "create"}, ghArgs...)
		gt.NoError(t, cli.New(cli.WithOutput(&out)).Run(append(args, "Foo")))

		gt.V(t, fake.called()).Equal([]string{"CreateUserList"})
		gt.V(t, fake.lastVariables()["isPrivate"]).Equal(any(true))
		gt.V(t, fake.lastVariables()["description"]).Equal(nil)
		gt.S(t, out.String()).Contains(`Created private List "Foo" (UL_new) for octocat`)
	})

	t.Run("public when private is turned off", func(t *testing.T) {
		fake, ghArgs := setupCLI(t)

		var out strings.Builder
		args := append([]string{"stardust", "lists", "create", "--private=false", "--description", "misc"}, ghArgs...)
		gt.NoError(t, cli.New(cli.WithOutput(&out)).Run(append(args, "Foo")))

		gt.V(t, fake.lastVariables()["isPrivate"]).Equal(any(false))
		gt.V(t, fake.lastVariables()["description"]).Equal(any("misc"))
		gt.S(t, out.String()).Contains(`Created public List "Foo" (UL_new) for octocat`)
	})
}

func TestListsCommandRequiresToken(t *testing.T) {
	fake, _ := setupCLI(t)

	err := cli.New(cli.WithOutput(io.Discard)).Run([]string{"stardust", "lists", "--github-username", "octocat"})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
	gt.V(t, len(fake.called())).Equal(0)
}

func TestDeleteAllCancelled(t *testing.T) {
	fake, ghArgs := setupCLI(t)

	var out strings.Builder
	c := cli.New(cli.WithOutput(&out), cli.WithInput(strings.NewReader("n\n")))
	gt.NoError(t, c.Run(append([]string{"stardust", "lists", "delete-all"}, ghArgs...)))

	gt.S(t, out.String()).Contains("Delete all Lists of octocat? [y/N]")
	gt.S(t, out.String()).Contains("Cancelled")
	gt.V(t, len(fake.called())).Equal(0)
}

func TestStarsCommand(t *testing.T) {
	_, ghArgs := setupCLI(t)

	var out strings.Builder
	gt.NoError(t, cli.New(cli.WithOutput(&out)).Run(append([]string{"stardust", "stars"}, ghArgs...)))

	gt.S(t, out.String()).Contains("golang/go")
	gt.S(t, out.String()).Contains("2 starred repositories")
}

func TestOrganizeDryRun(t *testing.T) {
	fake, ghArgs := setupCLI(t)

	planFile := filepath.Join(t.TempDir(), "plan.yaml")
	gt.NoError(t, os.WriteFile(planFile, []byte(`
categories:
  - name: Tools
    repositories: [spf13/*]
  - name: Languages
    repositories: [golang/go]
`), 0600))

	var out strings.Builder
	args := append([]string{"stardust", "organize", "--plan", planFile, "--dry-run"}, ghArgs...)
	gt.NoError(t, cli.New(cli.WithOutput(&out)).Run(args))

	gt.S(t, out.String()).Contains("New Lists: Languages")
	gt.S(t, out.String()).Contains("dry run")
	for _, op := range fake.called() {
		gt.V(t, op).NotEqual("unexpected")
	}
}

func TestOrganizeInvalidPlan(t *testing.T) {
	_, ghArgs := setupCLI(t)

	planFile := filepath.Join(t.TempDir(), "plan.yaml")
	gt.NoError(t, os.WriteFile(planFile, []byte("categories: []"), 0600))

	args := append([]string{"stardust", "organize", "--plan", planFile}, ghArgs...)
	err := cli.New(cli.WithOutput(io.Discard)).Run(args)
	gt.True(t, errors.Is(err, types.ErrInvalidPlan))
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		t.Setenv("STARDUST_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
		loaded, err := cli.LoadEnvFileForTest()
		gt.NoError(t, err)
		gt.V(t, loaded).Equal("")
	})

	t.Run("variables are loaded without overriding", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(envFile, []byte("STARDUST_TEST_FROM_FILE=loaded\nSTARDUST_TEST_PRESET=file\n"), 0600))
		t.Setenv("STARDUST_ENV_FILE", envFile)
		t.Setenv("STARDUST_TEST_PRESET", "env")
		t.Cleanup(func() { _ = os.Unsetenv("STARDUST_TEST_FROM_FILE") })

		loaded, err := cli.LoadEnvFileForTest()
		gt.NoError(t, err)
		gt.V(t, loaded).Equal(envFile)
		gt.V(t, os.Getenv("STARDUST_TEST_FROM_FILE")).Equal("loaded")
		gt.V(t, os.Getenv("STARDUST_TEST_PRESET")).Equal("env")
	})
}
