package github

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

type listNode struct {
	ID          types.ListID `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	IsPrivate   bool         `json:"isPrivate"`
	Slug        string       `json:"slug"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	LastAddedAt *time.Time   `json:"lastAddedAt"`
	Items       *struct {
		TotalCount int `json:"totalCount"`
	} `json:"items"`
}

func (x *listNode) toModel() *model.List {
	list := &model.List{
		ID:           x.ID,
		Name:         x.Name,
		Description:  deref(x.Description),
		IsPrivate:    x.IsPrivate,
		Slug:         x.Slug,
		CreatedAt:    x.CreatedAt,
		UpdatedAt:    x.UpdatedAt,
		LastAddedAt:  x.LastAddedAt,
		Repositories: []*model.ListItem{},
	}
	if x.Items != nil {
		list.TotalRepositories = x.Items.TotalCount
	}
	return list
}

// itemNode is one member of the List item union. Only the Repository variant is kept.
type itemNode struct {
	Typename       string  `json:"__typename"`
	Name           string  `json:"name"`
	URL            string  `json:"url"`
	IsPrivate      bool    `json:"isPrivate"`
	Description    *string `json:"description"`
	StargazerCount int     `json:"stargazerCount"`
	Owner          struct {
		Login string `json:"login"`
	} `json:"owner"`
}

func (x *itemNode) toModel() *model.ListItem {
	return &model.ListItem{
		Name:        x.Name,
		URL:         x.URL,
		Owner:       x.Owner.Login,
		Description: deref(x.Description),
		Stars:       x.StargazerCount,
		IsPrivate:   x.IsPrivate,
	}
}

type fetchListsData struct {
	User *struct {
		Lists *struct {
			TotalCount int         `json:"totalCount"`
			PageInfo   pageInfo    `json:"pageInfo"`
			Nodes      []*listNode `json:"nodes"`
		} `json:"lists"`
	} `json:"user"`
}

type fetchListItemsData struct {
	Node *struct {
		Items *struct {
			PageInfo pageInfo    `json:"pageInfo"`
			Nodes    []*itemNode `json:"nodes"`
		} `json:"items"`
	} `json:"node"`
}

type createListData struct {
	CreateUserList struct {
		List   *listNode `json:"list"`
		Viewer struct {
			Login string `json:"login"`
		} `json:"viewer"`
	} `json:"createUserList"`
}

type updateListData struct {
	UpdateUserList struct {
		List *listNode `json:"list"`
	} `json:"updateUserList"`
}

type deleteListData struct {
	DeleteUserList struct {
		User struct {
			Login string `json:"login"`
		} `json:"user"`
	} `json:"deleteUserList"`
}

type setMembershipData struct {
	UpdateUserListsForItem struct {
		Lists []*model.ListRef `json:"lists"`
		Item  *itemNode        `json:"item"`
	} `json:"updateUserListsForItem"`
}

// FetchLists returns every List of username with all of its repositories.
//
// Lists are paged first with only an item count, then the items of each List are paged separately.
// GitHub rejects a single query nesting both connections as too expensive. Item walks of distinct
// Lists run concurrently up to the client's concurrency cap; the result keeps the List order.
func (x *Client) FetchLists(ctx context.Context, token types.GitHubToken, username string) (*model.ListsResponse, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "username is required")
	}

	var totalCount int
	fetchPage := func(ctx context.Context, cursor *string) ([]*listNode, *string, bool, error) {
		data, err := Query[fetchListsData](ctx, x, token, fetchListsQuery, map[string]any{
			"username": username,
			"first":    listsPageSize,
			"cursor":   cursor,
		})
		if err != nil {
			return nil, nil, false, goerr.Wrap(err, "failed to fetch lists", goerr.V("username", username))
		}
		if data.User == nil || data.User.Lists == nil {
			return nil, nil, false, goerr.Wrap(ErrUnexpectedData, "no user lists in response", goerr.V("username", username))
		}

		totalCount = data.User.Lists.TotalCount
		next, more := data.User.Lists.PageInfo.next()
		return data.User.Lists.Nodes, next, more, nil
	}

	nodes, err := collectPages[*string, *listNode](ctx, nil, fetchPage, nil)
	if err != nil {
		return nil, err
	}

	lists := make([]*model.List, len(nodes))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(x.concurrency)

	for i, node := range nodes {
		lists[i] = node.toModel()
		list := lists[i]
		eg.Go(func() error {
			items, err := x.fetchListItems(ctx, token, list.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch list items", goerr.V("list", list.Name))
			}
			list.Repositories = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("fetched lists",
		slog.String("username", username),
		slog.Int("total", totalCount),
	)

	return &model.ListsResponse{
		Username:   username,
		TotalLists: totalCount,
		Lists:      lists,
	}, nil
}

func (x *Client) fetchListItems(ctx context.Context, token types.GitHubToken, listID types.ListID) ([]*model.ListItem, error) {
	fetchPage := func(ctx context.Context, cursor *string) ([]*model.ListItem, *string, bool, error) {
		data, err := Query[fetchListItemsData](ctx, x, token, fetchListItemsQuery, map[string]any{
			"listId": listID,
			"first":  itemsPageSize,
			"cursor": cursor,
		})
		if err != nil {
			return nil, nil, false, err
		}

		if data.Node == nil || data.Node.Items == nil {
			logging.From(ctx).Warn("list has no item connection, stopping", slog.Any("list_id", listID))
			return nil, nil, false, nil
		}

		var items []*model.ListItem
		for _, node := range data.Node.Items.Nodes {
			if node == nil || node.Typename != "Repository" {
				continue
			}
			items = append(items, node.toModel())
		}

		next, more := data.Node.Items.PageInfo.next()
		return items, next, more, nil
	}

	return collectPages[*string, *model.ListItem](ctx, nil, fetchPage, nil)
}

// CreateList creates a List owned by the authenticated user. An empty description is sent as null.
func (x *Client) CreateList(ctx context.Context, token types.GitHubToken, input *model.CreateListInput) (*model.CreatedList, error) {
	if input == nil || input.Name == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "list name is required")
	}

	var description any
	if input.Description != "" {
		description = input.Description
	}

	data, err := Query[createListData](ctx, x, token, createListMutation, map[string]any{
		"name":        input.Name,
		"description": description,
		"isPrivate":   input.IsPrivate,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create list", goerr.V("name", input.Name))
	}
	if data.CreateUserList.List == nil {
		return nil, goerr.Wrap(ErrUnexpectedData, "no list in create response", goerr.V("name", input.Name))
	}

	return &model.CreatedList{
		List:        data.CreateUserList.List.toModel(),
		ViewerLogin: data.CreateUserList.Viewer.Login,
	}, nil
}

// UpdateList changes the given fields of a List. Fields left nil are not sent, so GitHub keeps their
// current values.
func (x *Client) UpdateList(ctx context.Context, token types.GitHubToken, listID types.ListID, update *model.ListUpdate) (*model.List, error) {
	if listID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "list ID is required")
	}

	variables := map[string]any{"listId": listID}
	if update != nil {
		if update.Name != nil {
			variables["name"] = *update.Name
		}
		if update.Description != nil {
			variables["description"] = *update.Description
		}
		if update.IsPrivate != nil {
			variables["isPrivate"] = *update.IsPrivate
		}
	}

	data, err := Query[updateListData](ctx, x, token, updateListMutation, variables)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update list", goerr.V("list_id", listID))
	}
	if data.UpdateUserList.List == nil {
		return nil, goerr.Wrap(ErrUnexpectedData, "no list in update response", goerr.V("list_id", listID))
	}

	return data.UpdateUserList.List.toModel(), nil
}

// DeleteList deletes a List and returns the login of its owner.
func (x *Client) DeleteList(ctx context.Context, token types.GitHubToken, listID types.ListID) (string, error) {
	if listID == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "list ID is required")
	}

	data, err := Query[deleteListData](ctx, x, token, deleteListMutation, map[string]any{
		"listId": listID,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to delete list", goerr.V("list_id", listID))
	}

	return data.DeleteUserList.User.Login, nil
}

// DeleteAllLists deletes every List of username one at a time. A failed deletion is logged and
// skipped. It returns the number of Lists actually deleted; onProgress, if set, is called after each
// of them.
func (x *Client) DeleteAllLists(ctx context.Context, token types.GitHubToken, username string, onProgress model.DeleteProgressFunc) (int, error) {
	resp, err := x.FetchLists(ctx, token, username)
	if err != nil {
		return 0, err
	}

	logger := logging.From(ctx)
	total := len(resp.Lists)
	deleted := 0

	for _, list := range resp.Lists {
		if err := ctx.Err(); err != nil {
			return deleted, goerr.Wrap(err, "deletion interrupted", goerr.V("deleted", deleted), goerr.V("total", total))
		}

		if _, err := x.DeleteList(ctx, token, list.ID); err != nil {
			logger.Warn("failed to delete list",
				slog.String("name", list.Name),
				slog.Any("list_id", list.ID),
				slog.Any("error", err),
			)
			continue
		}

		deleted++
		if onProgress != nil {
			onProgress(deleted, total)
		}
	}

	return deleted, nil
}

// SetMembership replaces the whole set of Lists the repository belongs to. An empty listIDs removes
// the repository from every List.
func (x *Client) SetMembership(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, listIDs []types.ListID) (*model.Membership, error) {
	if repoID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository ID is required")
	}

	ids := dedupe(listIDs)
	data, err := Query[setMembershipData](ctx, x, token, setMembershipMutation, map[string]any{
		"itemId":  repoID,
		"listIds": ids,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update list membership",
			goerr.V("repository_id", repoID),
			goerr.V("list_ids", ids),
		)
	}

	membership := &model.Membership{
		Lists: data.UpdateUserListsForItem.Lists,
	}
	if membership.Lists == nil {
		membership.Lists = []*model.ListRef{}
	}
	if data.UpdateUserListsForItem.Item != nil {
		membership.Item = data.UpdateUserListsForItem.Item.toModel()
	}

	return membership, nil
}

// AddToLists submits listIDs as the repository's membership. Callers pass the union of the current
// and the new List IDs.
func (x *Client) AddToLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, listIDs []types.ListID) (*model.Membership, error) {
	if len(listIDs) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "at least one list ID is required", goerr.V("repository_id", repoID))
	}
	return x.SetMembership(ctx, token, repoID, listIDs)
}

// RemoveFromLists submits current minus remove as the repository's membership.
func (x *Client) RemoveFromLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID, current, remove []types.ListID) (*model.Membership, error) {
	remaining := make([]types.ListID, 0, len(current))
	for _, id := range current {
		if !slices.Contains(remove, id) {
			remaining = append(remaining, id)
		}
	}
	return x.SetMembership(ctx, token, repoID, remaining)
}

// RemoveFromAllLists removes the repository from every List.
func (x *Client) RemoveFromAllLists(ctx context.Context, token types.GitHubToken, repoID types.RepositoryID) (*model.Membership, error) {
	return x.SetMembership(ctx, token, repoID, []types.ListID{})
}

func dedupe(ids []types.ListID) []types.ListID {
	resp := make([]types.ListID, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(resp, id) {
			resp = append(resp, id)
		}
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
