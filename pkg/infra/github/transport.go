package github

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/infra"
	"github.com/stardust-cli/stardust/pkg/utils/logging"
	"github.com/stardust-cli/stardust/pkg/utils/safe"
)

const (
	defaultRetries      = 3
	defaultInitialDelay = time.Second
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestSpec describes one HTTP exchange. Body is re-sent on every attempt.
type RequestSpec struct {
	Method string
	Header http.Header
	Body   []byte
}

// Transport performs an HTTP exchange and retries 5xx responses and connection failures with
// exponential backoff (initialDelay × 2^attempt). It knows nothing about GitHub's schema.
type Transport struct {
	httpClient   infra.HTTPClient
	retries      int
	initialDelay time.Duration
	sleep        SleepFunc
}

func NewTransport(httpClient infra.HTTPClient) *Transport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Transport{
		httpClient:   httpClient,
		retries:      defaultRetries,
		initialDelay: defaultInitialDelay,
		sleep:        sleepContext,
	}
}

func isRetryableStatus(code int) bool {
	return code >= 500 && code < 600
}

func (x *Transport) delay(attempt int) time.Duration {
	return x.initialDelay * time.Duration(1<<attempt)
}

// Do sends the request. When retries run out on a 5xx, the last response is returned as-is and the
// caller decides how to surface it. When they run out on a connection failure, a *TransportError is
// returned.
func (x *Transport) Do(ctx context.Context, url string, spec *RequestSpec) (*http.Response, error) {
	logger := logging.From(ctx)
	var lastErr error

	for attempt := 0; attempt <= x.retries; attempt++ {
		req, err := x.newRequest(ctx, url, spec)
		if err != nil {
			return nil, err
		}

		resp, err := x.httpClient.Do(req)
		if err == nil {
			if !isRetryableStatus(resp.StatusCode) || attempt == x.retries {
				return resp, nil
			}

			delay := x.delay(attempt)
			logger.Warn("server error, retrying",
				slog.Int("status", resp.StatusCode),
				slog.Duration("delay", delay),
				slog.Int("attempt", attempt+1),
				slog.Int("retries", x.retries),
				slog.String("url", url),
			)
			safe.DrainAndClose(resp.Body)

			if err := x.sleep(ctx, delay); err != nil {
				return nil, goerr.Wrap(err, "interrupted while waiting to retry", goerr.V("url", url))
			}
			continue
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, goerr.Wrap(ctxErr, "request cancelled", goerr.V("url", url))
		}

		lastErr = err
		if attempt < x.retries {
			delay := x.delay(attempt)
			logger.Warn("network error, retrying",
				slog.String("error", err.Error()),
				slog.Duration("delay", delay),
				slog.Int("attempt", attempt+1),
				slog.Int("retries", x.retries),
				slog.String("url", url),
			)
			if err := x.sleep(ctx, delay); err != nil {
				return nil, goerr.Wrap(err, "interrupted while waiting to retry", goerr.V("url", url))
			}
		}
	}

	return nil, goerr.Wrap(&TransportError{
		URL:      url,
		Attempts: x.retries + 1,
		Err:      lastErr,
	}, "request failed after retries")
}

func (x *Transport) newRequest(ctx context.Context, url string, spec *RequestSpec) (*http.Request, error) {
	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url), goerr.V("method", method))
	}

	for key, values := range spec.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return req, nil
}
