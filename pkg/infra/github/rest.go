package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/safe"
)

// restPerPage is the REST page size. A shorter page is the last one.
const restPerPage = 100

type RequestOptions struct {
	Method string
	// Body is JSON encoded when not nil.
	Body any
	// Header values override the defaults.
	Header http.Header
}

// Request calls a REST endpoint and decodes the response into T. endpoint is either a path below the
// API origin or an absolute URL such as a next-page link. Any non-2xx status is a *RequestFailedError.
func Request[T any](ctx context.Context, client *Client, token types.GitHubToken, endpoint string, opts *RequestOptions) (T, int, error) {
	var zero T
	if opts == nil {
		opts = &RequestOptions{}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return zero, 0, goerr.Wrap(err, "failed to encode request body", goerr.V("endpoint", endpoint))
		}
		body = encoded
	}

	header := client.header("token " + string(token))
	for key, values := range opts.Header {
		header[http.CanonicalHeaderKey(key)] = values
	}

	url := client.resolveURL(endpoint)
	resp, err := client.transport.Do(ctx, url, &RequestSpec{
		Method: method,
		Header: header,
		Body:   body,
	})
	if err != nil {
		return zero, 0, err
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, resp.StatusCode, goerr.Wrap(err, "failed to read response", goerr.V("url", url))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, resp.StatusCode, goerr.Wrap(&RequestFailedError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}, "REST request failed", goerr.V("method", method), goerr.V("url", url))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, resp.StatusCode, nil
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return zero, resp.StatusCode, goerr.Wrap(err, "failed to decode response", goerr.V("url", url))
	}

	return data, resp.StatusCode, nil
}

// Paginate fetches every page of a REST list endpoint, starting at page 1, until a page has fewer
// than 100 items. onProgress, if set, receives the running item count after each page.
func Paginate[T any](ctx context.Context, client *Client, token types.GitHubToken, endpoint string, onProgress func(count int)) ([]T, error) {
	fetch := func(ctx context.Context, page int) ([]T, int, bool, error) {
		items, _, err := Request[[]T](ctx, client, token, pageEndpoint(endpoint, page), nil)
		if err != nil {
			return nil, 0, false, goerr.Wrap(err, "failed to fetch page",
				goerr.V("endpoint", endpoint),
				goerr.V("page", page),
			)
		}
		return items, page + 1, len(items) >= restPerPage, nil
	}

	return collectPages[int, T](ctx, 1, fetch, onProgress)
}

func pageEndpoint(endpoint string, page int) string {
	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%spage=%d&per_page=%d", endpoint, separator, page, restPerPage)
}
