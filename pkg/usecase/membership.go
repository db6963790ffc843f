package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

type MembershipInput struct {
	// Repository is "owner/name".
	Repository string
	// Lists are List IDs or names.
	Lists []string
}

// AddToLists adds the repository to the given Lists, keeping the Lists it already belongs to.
func (x *UseCase) AddToLists(ctx context.Context, cfg *model.Config, input *MembershipInput) (*model.Membership, error) {
	if len(input.Lists) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "at least one list is required")
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	repo, lists, err := x.membershipState(ctx, cfg, input.Repository)
	if err != nil {
		return nil, err
	}

	add, err := lookupLists(lists, input.Lists)
	if err != nil {
		return nil, err
	}

	target := append(lists.ListIDsOf(repo.URL), add...)
	membership, err := gh.AddToLists(ctx, cfg.Token, repo.ID, target)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add repository to lists", goerr.V("repository", input.Repository))
	}

	logging.From(ctx).Info("repository added to lists",
		slog.String("repository", input.Repository),
		slog.Int("lists", len(membership.Lists)),
	)
	return membership, nil
}

// RemoveFromLists removes the repository from the given Lists only.
func (x *UseCase) RemoveFromLists(ctx context.Context, cfg *model.Config, input *MembershipInput) (*model.Membership, error) {
	if len(input.Lists) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "at least one list is required")
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	repo, lists, err := x.membershipState(ctx, cfg, input.Repository)
	if err != nil {
		return nil, err
	}

	remove, err := lookupLists(lists, input.Lists)
	if err != nil {
		return nil, err
	}

	membership, err := gh.RemoveFromLists(ctx, cfg.Token, repo.ID, lists.ListIDsOf(repo.URL), remove)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to remove repository from lists", goerr.V("repository", input.Repository))
	}

	logging.From(ctx).Info("repository removed from lists",
		slog.String("repository", input.Repository),
		slog.Int("remaining", len(membership.Lists)),
	)
	return membership, nil
}

// ClearMembership removes the repository from every List.
func (x *UseCase) ClearMembership(ctx context.Context, cfg *model.Config, repository string) (*model.Membership, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	repo, err := gh.GetRepository(ctx, cfg.Token, repository)
	if err != nil {
		return nil, err
	}

	membership, err := gh.RemoveFromAllLists(ctx, cfg.Token, repo.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clear list membership", goerr.V("repository", repository))
	}

	logging.From(ctx).Info("repository removed from all lists", slog.String("repository", repository))
	return membership, nil
}

// membershipState returns the repository and every List, needed because membership mutations replace
// the whole set.
func (x *UseCase) membershipState(ctx context.Context, cfg *model.Config, repository string) (*model.StarredRepository, *model.ListsResponse, error) {
	gh, err := x.github()
	if err != nil {
		return nil, nil, err
	}

	repo, err := gh.GetRepository(ctx, cfg.Token, repository)
	if err != nil {
		return nil, nil, err
	}

	lists, err := x.ShowLists(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return repo, lists, nil
}
