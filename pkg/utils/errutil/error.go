package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

// HandleError reports err to Sentry (when configured) and logs it. Validation and option errors are
// user mistakes and are only logged.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	var evID *sentry.EventID
	if !isUserError(err) {
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			if goErr := goerr.Unwrap(err); goErr != nil {
				for k, v := range goErr.Values() {
					scope.SetExtra(fmt.Sprintf("%v", k), v)
				}
			}
		})
		evID = hub.CaptureException(err)
	}

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

func isUserError(err error) bool {
	return errors.Is(err, types.ErrInvalidOption) ||
		errors.Is(err, types.ErrValidationFailed) ||
		errors.Is(err, types.ErrInvalidPlan)
}
