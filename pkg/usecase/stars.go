package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

func (x *UseCase) ListStars(ctx context.Context, cfg *model.Config, onProgress func(count int)) ([]*model.StarredRepository, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	stars, err := gh.ListStarred(ctx, cfg.Token, onProgress)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list stars")
	}

	logging.From(ctx).Debug("stars fetched", slog.Int("count", len(stars)))
	return stars, nil
}
