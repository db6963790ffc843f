package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

func (x *UseCase) ShowLists(ctx context.Context, cfg *model.Config) (*model.ListsResponse, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	resp, err := gh.FetchLists(ctx, cfg.Token, cfg.Username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch lists", goerr.V("username", cfg.Username))
	}

	logging.From(ctx).Debug("lists fetched",
		slog.String("username", resp.Username),
		slog.Int("total", resp.TotalLists),
	)
	return resp, nil
}

func (x *UseCase) CreateList(ctx context.Context, cfg *model.Config, input *model.CreateListInput) (*model.CreatedList, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	created, err := gh.CreateList(ctx, cfg.Token, input)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("list created",
		slog.String("name", created.List.Name),
		slog.Any("id", created.List.ID),
		slog.String("owner", created.ViewerLogin),
	)
	return created, nil
}

// UpdateList changes a List found by ID or exact name.
func (x *UseCase) UpdateList(ctx context.Context, cfg *model.Config, list string, update *model.ListUpdate) (*model.List, error) {
	if update.IsEmpty() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "nothing to update", goerr.V("list", list))
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	listID, err := x.resolveListID(ctx, cfg, list)
	if err != nil {
		return nil, err
	}

	return gh.UpdateList(ctx, cfg.Token, listID, update)
}

// DeleteList deletes a List found by ID or exact name.
func (x *UseCase) DeleteList(ctx context.Context, cfg *model.Config, list string) error {
	gh, err := x.github()
	if err != nil {
		return err
	}

	listID, err := x.resolveListID(ctx, cfg, list)
	if err != nil {
		return err
	}

	login, err := gh.DeleteList(ctx, cfg.Token, listID)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("list deleted", slog.Any("id", listID), slog.String("owner", login))
	return nil
}

// DeleteAllLists deletes every List of the configured user. Failed deletions are logged by the
// GitHub client and only lower the returned count.
func (x *UseCase) DeleteAllLists(ctx context.Context, cfg *model.Config, onProgress model.DeleteProgressFunc) (int, error) {
	gh, err := x.github()
	if err != nil {
		return 0, err
	}

	deleted, err := gh.DeleteAllLists(ctx, cfg.Token, cfg.Username, onProgress)
	if err != nil {
		return deleted, goerr.Wrap(err, "failed to delete lists", goerr.V("username", cfg.Username))
	}

	logging.From(ctx).Info("lists deleted", slog.Int("deleted", deleted))
	return deleted, nil
}

// resolveListID accepts a List ID or name. Only names need a round trip.
func (x *UseCase) resolveListID(ctx context.Context, cfg *model.Config, list string) (types.ListID, error) {
	if list == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "list ID or name is required")
	}

	lists, err := x.ShowLists(ctx, cfg)
	if err != nil {
		return "", err
	}

	ids, err := lookupLists(lists, []string{list})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// lookupLists maps each List ID or name to an ID of a List in resp.
func lookupLists(resp *model.ListsResponse, names []string) ([]types.ListID, error) {
	ids := make([]types.ListID, 0, len(names))
	for _, name := range names {
		found := resp.FindByName(name)
		if found == nil {
			for _, l := range resp.Lists {
				if string(l.ID) == name {
					found = l
					break
				}
			}
		}
		if found == nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "list not found", goerr.V("list", name))
		}
		ids = append(ids, found.ID)
	}
	return ids, nil
}
