package github

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

// scriptedClient replays one step per call. The last step repeats when the script runs out.
type scriptedClient struct {
	mu       sync.Mutex
	steps    []func(req *http.Request) (*http.Response, error)
	requests []*http.Request
}

func (x *scriptedClient) Do(req *http.Request) (*http.Response, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	idx := min(len(x.requests), len(x.steps)-1)
	x.requests = append(x.requests, req)
	return x.steps[idx](req)
}

func status(code int, body string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: code,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
		}, nil
	}
}

func connReset() func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset by peer")
	}
}

type sleepRecorder struct {
	delays []time.Duration
}

func (x *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	x.delays = append(x.delays, d)
	return ctx.Err()
}

func newTestTransport(client *scriptedClient, rec *sleepRecorder) *Transport {
	tr := NewTransport(client)
	tr.sleep = rec.sleep
	return tr
}

func TestTransportDo(t *testing.T) {
	ctx := context.Background()
	spec := &RequestSpec{Method: http.MethodPost, Body: []byte(`{"query":"q"}`)}

	t.Run("503 then 200 waits once for one second", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			status(503, "unavailable"),
			status(200, "ok"),
		}}
		rec := &sleepRecorder{}

		resp, err := newTestTransport(client, rec).Do(ctx, "https://example.com", spec)
		gt.NoError(t, err)
		gt.V(t, resp.StatusCode).Equal(200)
		gt.V(t, len(client.requests)).Equal(2)
		gt.V(t, rec.delays).Equal([]time.Duration{time.Second})
	})

	t.Run("body is re-sent on retry", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			status(502, ""),
			func(req *http.Request) (*http.Response, error) {
				body := gt.R1(io.ReadAll(req.Body)).NoError(t)
				gt.V(t, string(body)).Equal(`{"query":"q"}`)
				return status(200, "ok")(req)
			},
		}}

		_, err := newTestTransport(client, &sleepRecorder{}).Do(ctx, "https://example.com", spec)
		gt.NoError(t, err)
	})

	t.Run("persistent 500 returns last response after backoff 1s 2s 4s", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			status(500, "boom"),
		}}
		rec := &sleepRecorder{}

		resp, err := newTestTransport(client, rec).Do(ctx, "https://example.com", spec)
		gt.NoError(t, err)
		gt.V(t, resp.StatusCode).Equal(500)
		body := gt.R1(io.ReadAll(resp.Body)).NoError(t)
		gt.V(t, string(body)).Equal("boom")
		gt.V(t, len(client.requests)).Equal(4)
		gt.V(t, rec.delays).Equal([]time.Duration{time.Second, 2 * time.Second, 4 * time.Second})
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		for _, code := range []int{400, 401, 403, 404, 422} {
			client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
				status(code, "no"),
			}}
			rec := &sleepRecorder{}

			resp, err := newTestTransport(client, rec).Do(ctx, "https://example.com", spec)
			gt.NoError(t, err)
			gt.V(t, resp.StatusCode).Equal(code)
			gt.V(t, len(client.requests)).Equal(1)
			gt.V(t, len(rec.delays)).Equal(0)
		}
	})

	t.Run("connection failure recovers", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			connReset(),
			connReset(),
			status(200, "ok"),
		}}
		rec := &sleepRecorder{}

		resp, err := newTestTransport(client, rec).Do(ctx, "https://example.com", spec)
		gt.NoError(t, err)
		gt.V(t, resp.StatusCode).Equal(200)
		gt.V(t, rec.delays).Equal([]time.Duration{time.Second, 2 * time.Second})
	})

	t.Run("connection failures exhaust retries", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			connReset(),
		}}
		rec := &sleepRecorder{}

		resp, err := newTestTransport(client, rec).Do(ctx, "https://example.com", spec)
		gt.Error(t, err)
		gt.V(t, resp).Equal(nil)
		gt.V(t, len(client.requests)).Equal(4)
		gt.V(t, len(rec.delays)).Equal(3)

		var trErr *TransportError
		gt.True(t, errors.As(err, &trErr))
		gt.V(t, trErr.Attempts).Equal(4)
		gt.S(t, trErr.Err.Error()).Contains("connection reset")
	})

	t.Run("zero retries makes a single attempt", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			status(500, "boom"),
		}}
		rec := &sleepRecorder{}
		tr := newTestTransport(client, rec)
		tr.retries = 0

		resp, err := tr.Do(ctx, "https://example.com", spec)
		gt.NoError(t, err)
		gt.V(t, resp.StatusCode).Equal(500)
		gt.V(t, len(client.requests)).Equal(1)
		gt.V(t, len(rec.delays)).Equal(0)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			func(req *http.Request) (*http.Response, error) {
				cancel()
				return status(503, "")(req)
			},
		}}

		_, err := newTestTransport(client, &sleepRecorder{}).Do(ctx, "https://example.com", spec)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.V(t, len(client.requests)).Equal(1)
	})

	t.Run("invalid URL is not retried", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			status(200, "ok"),
		}}

		_, err := newTestTransport(client, &sleepRecorder{}).Do(ctx, "://bad url", spec)
		gt.Error(t, err)
		gt.V(t, len(client.requests)).Equal(0)
	})

	t.Run("headers are sent", func(t *testing.T) {
		client := &scriptedClient{steps: []func(*http.Request) (*http.Response, error){
			func(req *http.Request) (*http.Response, error) {
				gt.V(t, req.Method).Equal(http.MethodPost)
				gt.V(t, req.Header.Get("X-Test")).Equal("yes")
				return status(200, "ok")(req)
			},
		}}

		_, err := newTestTransport(client, &sleepRecorder{}).Do(ctx, "https://example.com", &RequestSpec{
			Method: http.MethodPost,
			Header: http.Header{"X-Test": []string{"yes"}},
		})
		gt.NoError(t, err)
	})
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Hour)
	gt.True(t, errors.Is(err, context.Canceled))
	gt.NoError(t, sleepContext(context.Background(), time.Millisecond))
}
