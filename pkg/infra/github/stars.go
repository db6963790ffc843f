package github

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

func toStarredRepository(repo *gh.Repository) *model.StarredRepository {
	return &model.StarredRepository{
		ID:          types.RepositoryID(repo.GetNodeID()),
		FullName:    repo.GetFullName(),
		Owner:       repo.GetOwner().GetLogin(),
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Topics:      repo.Topics,
		Stars:       repo.GetStargazersCount(),
		IsPrivate:   repo.GetPrivate(),
	}
}

// ListStarred returns every repository starred by the authenticated user.
func (x *Client) ListStarred(ctx context.Context, token types.GitHubToken, onProgress func(count int)) ([]*model.StarredRepository, error) {
	repos, err := Paginate[*gh.Repository](ctx, x, token, "/user/starred", onProgress)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list starred repositories")
	}

	resp := make([]*model.StarredRepository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		resp = append(resp, toStarredRepository(repo))
	}

	return resp, nil
}

func (x *Client) GetRepository(ctx context.Context, token types.GitHubToken, fullName string) (*model.StarredRepository, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository must be owner/name", goerr.V("repository", fullName))
	}

	repo, _, err := Request[*gh.Repository](ctx, x, token, "/repos/"+owner+"/"+name, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repository", fullName))
	}
	if repo == nil || repo.GetNodeID() == "" {
		return nil, goerr.Wrap(ErrUnexpectedData, "repository has no node ID", goerr.V("repository", fullName))
	}

	return toStarredRepository(repo), nil
}
