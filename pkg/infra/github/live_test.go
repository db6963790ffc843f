package github_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/infra/github"
	"github.com/stardust-cli/stardust/pkg/utils/testutil"
)

func TestLiveReadOnly(t *testing.T) {
	token, username := testutil.GitHubAccountOrSkip(t)
	ctx := context.Background()
	client := github.New()

	resp, err := client.FetchLists(ctx, token, username)
	gt.NoError(t, err)
	gt.V(t, len(resp.Lists)).Equal(resp.TotalLists)
	for _, list := range resp.Lists {
		t.Logf("list %q: %d repositories", list.Name, len(list.Repositories))
		gt.True(t, len(list.Repositories) <= list.TotalRepositories)
	}

	var pages int
	stars, err := client.ListStarred(ctx, token, func(count int) { pages++ })
	gt.NoError(t, err)
	gt.True(t, pages >= 1)
	t.Logf("%d starred repositories", len(stars))
}
