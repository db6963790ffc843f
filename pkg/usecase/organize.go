package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

type OrganizeInput struct {
	// DryRun reports what would change without creating Lists or touching memberships.
	DryRun bool
}

type organizeFailure struct {
	Repository string
	Error      string
}

// Organize files every starred repository into the List of its category. Missing category Lists are
// created first. Existing memberships are kept. A repository that cannot be updated is logged and
// skipped, and the run ends with an error summarizing the failures.
func (x *UseCase) Organize(ctx context.Context, cfg *model.Config, input *OrganizeInput) (*model.OrganizeResult, error) {
	logger := logging.From(ctx)
	started := logging.CtxTime(ctx)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if input == nil {
		input = &OrganizeInput{}
	}

	classifier := x.clients.Classifier()
	if classifier == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "classifier is required to organize stars")
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	stars, err := gh.ListStarred(ctx, cfg.Token, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list stars")
	}

	lists, err := gh.FetchLists(ctx, cfg.Token, cfg.Username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch lists", goerr.V("username", cfg.Username))
	}

	logger.Info("Starting organize",
		slog.String("username", cfg.Username),
		slog.Int("stars", len(stars)),
		slog.Int("lists", len(lists.Lists)),
		slog.Bool("dry_run", input.DryRun),
	)

	result := &model.OrganizeResult{}

	categories := classifier.Categories()
	if len(categories) > cfg.MaxCategories {
		categories = categories[:cfg.MaxCategories]
	}

	for _, category := range categories {
		if lists.FindByName(category.Name) != nil {
			continue
		}

		list := &model.List{Name: category.Name, Description: category.Description, IsPrivate: cfg.ListIsPrivate}
		if !input.DryRun {
			created, err := gh.CreateList(ctx, cfg.Token, &model.CreateListInput{
				Name:        category.Name,
				Description: category.Description,
				IsPrivate:   cfg.ListIsPrivate,
			})
			if err != nil {
				return nil, goerr.Wrap(err, "failed to create category list", goerr.V("category", category.Name))
			}
			list = created.List
		}

		lists.Lists = append(lists.Lists, list)
		result.CreatedLists = append(result.CreatedLists, category.Name)
		logger.Info("Created list for category", slog.String("category", category.Name))
	}

	assignments := make(map[types.RepositoryID]string, len(stars))
	classifyCfg := &model.ClassifyConfig{MaxCategories: cfg.MaxCategories}
	for start := 0; start < len(stars); start += cfg.BatchSize {
		batch := stars[start:min(start+cfg.BatchSize, len(stars))]

		logger.Debug("Classifying batch",
			slog.Int("offset", start),
			slog.Int("size", len(batch)),
			slog.Int("total", len(stars)),
		)

		resp, err := classifier.Classify(ctx, batch, classifyCfg)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to classify repositories", goerr.V("offset", start))
		}
		for id, category := range resp {
			assignments[id] = category
		}
	}

	var failures []organizeFailure
	for _, repo := range stars {
		category, ok := assignments[repo.ID]
		if !ok {
			result.Unclassified++
			continue
		}

		list := lists.FindByName(category)
		if list == nil {
			logger.Warn("Classifier returned unknown category",
				slog.String("repository", repo.FullName),
				slog.String("category", category),
			)
			result.Unclassified++
			continue
		}

		current := lists.ListIDsOf(repo.URL)
		if list.HasRepository(repo.URL) {
			result.Unchanged++
			continue
		}

		if !input.DryRun {
			target := append(slices.Clone(current), list.ID)
			if _, err := gh.AddToLists(ctx, cfg.Token, repo.ID, target); err != nil {
				failures = append(failures, organizeFailure{Repository: repo.FullName, Error: err.Error()})
				logger.Warn("Failed to add repository to list",
					slog.String("repository", repo.FullName),
					slog.String("list", list.Name),
					slog.String("error", err.Error()),
				)
				continue
			}
		}

		list.Repositories = append(list.Repositories, &model.ListItem{
			Name:  repo.Name,
			URL:   repo.URL,
			Owner: repo.Owner,
		})
		result.Assigned++
		logger.Debug("Added repository to list",
			slog.String("repository", repo.FullName),
			slog.String("list", list.Name),
		)
	}
	result.Failed = len(failures)

	logger.Info("Completed organize",
		slog.Int("created_lists", len(result.CreatedLists)),
		slog.Int("assigned", result.Assigned),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("unclassified", result.Unclassified),
		slog.Int("failed", result.Failed),
		slog.Duration("elapsed", logging.CtxTime(ctx).Sub(started)),
	)

	if len(failures) > 0 {
		failed := make([]string, len(failures))
		for i, f := range failures {
			failed[i] = f.Repository
			logger.Error("Repository organize failure details",
				slog.String("repository", f.Repository),
				slog.String("error", f.Error),
			)
		}

		return result, goerr.New("some repositories failed to be organized",
			goerr.V("success_count", result.Assigned),
			goerr.V("failure_count", len(failures)),
			goerr.V("failed_repos", failed),
		)
	}

	return result, nil
}
