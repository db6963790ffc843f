package interfaces

//go:generate moq -out ../mock/github.go -pkg mock . GitHub Classifier

import (
	"context"

	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// GitHub is the Lists and stars API used by usecases. Every call takes the credential explicitly.
type GitHub interface {
	FetchLists(ctx context.Context, token types.GitHubToken, username string) (*model.ListsResponse, error)
	CreateList(ctx context.Context, token types.GitHubToken, input *model.CreateListInput) (*model.CreatedList, error)
	UpdateList(ctx context.Context, token types.GitHubToken, listID types.ListID, update *model.ListUpdate) (*model.List, error)
	DeleteList(ctx context.Context, token types.GitHubToken, listID types.ListID) (string, error)
	DeleteAllLists(ctx context.Context, token types.GitHubToken, username string, onProgress model.DeleteProgressFunc) (int, error)

	// Membership operations replace the whole set of Lists the repository belongs to.
	SetMembership(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, listIDs []types.ListID) (*model.Membership, error)
	AddToLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, listIDs []types.ListID) (*model.Membership, error)
	RemoveFromLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, current, remove []types.ListID) (*model.Membership, error)
	RemoveFromAllLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID) (*model.Membership, error)

	ListStarred(ctx context.Context, token types.GitHubToken, onProgress func(count int)) ([]*model.StarredRepository, error)
	// GetRepository looks up a repository by "owner/name".
	GetRepository(ctx context.Context, token types.GitHubToken, fullName string) (*model.StarredRepository, error)
}

// Classifier assigns a category name to repositories. Repositories missing from the result are
// left unclassified.
type Classifier interface {
	Categories() []*model.PlanCategory
	Classify(ctx context.Context, repos []*model.StarredRepository, cfg *model.ClassifyConfig) (map[types.RepositoryID]string, error)
}
