package github

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// pageFunc fetches the page at cursor. It returns the page items, the cursor of the following page
// and whether that page exists.
type pageFunc[C, T any] func(ctx context.Context, cursor C) (items []T, next C, more bool, err error)

// collectPages walks pages strictly in order, starting at first, until fetch reports no more pages.
// The last page is always included. onProgress, if set, receives the running item count after every
// page. The result is never nil.
func collectPages[C, T any](ctx context.Context, first C, fetch pageFunc[C, T], onProgress func(count int)) ([]T, error) {
	all := []T{}
	cursor := first

	for {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "pagination interrupted")
		}

		items, next, more, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)
		if onProgress != nil {
			onProgress(len(all))
		}

		if !more {
			return all, nil
		}
		cursor = next
	}
}

// pageInfo is the GraphQL connection page descriptor.
type pageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// next returns the cursor of the following page. A page claiming more results without a cursor ends
// the walk.
func (x pageInfo) next() (*string, bool) {
	if x.HasNextPage && x.EndCursor != nil {
		return x.EndCursor, true
	}
	return nil, false
}
