package github_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/infra/github"
)

func noSleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...github.Option) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return github.New(append([]github.Option{
		github.WithRESTURL(srv.URL),
		github.WithGraphQLURL(srv.URL + "/graphql"),
		github.WithHTTPClient(srv.Client()),
		github.WithSleep(noSleep),
	}, opts...)...)
}

type viewerData struct {
	Viewer struct {
		Login string `json:"login"`
	} `json:"viewer"`
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	token := types.GitHubToken("test-token")

	t.Run("sends document and variables with bearer auth", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/graphql")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
			gt.V(t, r.Header.Get("User-Agent")).Equal("Stardust-CLI")
			gt.V(t, r.Header.Get("Content-Type")).Equal("application/json")

			var req struct {
				Query     string         `json:"query"`
				Variables map[string]any `json:"variables"`
			}
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gt.V(t, req.Query).Equal("query { viewer { login } }")
			gt.V(t, req.Variables["name"]).Equal("blue")

			_, _ = io.WriteString(w, `{"data":{"viewer":{"login":"octocat"}}}`)
		})

		data, err := github.Query[viewerData](ctx, client, token, "query { viewer { login } }", map[string]any{"name": "blue"})
		gt.NoError(t, err)
		gt.V(t, data.Viewer.Login).Equal("octocat")
	})

	t.Run("errors in a 200 envelope are a GraphQLError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":null,"errors":[{"message":"first"},{"message":"second","type":"NOT_FOUND"}]}`)
		})

		_, err := github.Query[viewerData](ctx, client, token, "query", nil)
		gt.Error(t, err)

		var gqlErr *github.GraphQLError
		gt.True(t, errors.As(err, &gqlErr))
		gt.V(t, gqlErr.Messages).Equal([]string{"first", "second"})
		gt.S(t, err.Error()).Contains("GraphQL Error: first, second")
	})

	t.Run("missing data is ErrEmptyData", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"data":null}`} {
			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				_, _ = io.WriteString(w, body)
			})

			_, err := github.Query[viewerData](ctx, client, token, "query", nil)
			gt.True(t, errors.Is(err, github.ErrEmptyData))
			gt.V(t, calls.Load()).Equal(int32(1))
		}
	})

	t.Run("non-2xx status is RequestFailedError with body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Bad credentials"}`)
		})

		_, err := github.Query[viewerData](ctx, client, token, "query", nil)
		var reqErr *github.RequestFailedError
		gt.True(t, errors.As(err, &reqErr))
		gt.V(t, reqErr.StatusCode).Equal(401)
		gt.S(t, reqErr.Body).Contains("Bad credentials")
		gt.V(t, github.StatusCode(err)).Equal(401)
	})

	t.Run("5xx is retried before failing", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}, github.WithRetries(2))

		_, err := github.Query[viewerData](ctx, client, token, "query", nil)
		gt.V(t, github.StatusCode(err)).Equal(502)
		gt.V(t, calls.Load()).Equal(int32(3))
	})

	t.Run("token does not leak into error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := github.Query[viewerData](ctx, client, token, "query", nil)
		gt.Error(t, err)
		gt.False(t, strings.Contains(err.Error(), "test-token"))
	})
}

func TestQueryBackoff(t *testing.T) {
	var requests atomic.Int32
	var delays []time.Duration
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	},
		github.WithRetries(3),
		github.WithBackoff(250*time.Millisecond),
		github.WithSleep(func(ctx context.Context, d time.Duration) error {
			delays = append(delays, d)
			return ctx.Err()
		}),
	)

	_, err := github.Query[viewerData](context.Background(), client, "test-token", "query { viewer { login } }", nil)
	var reqErr *github.RequestFailedError
	gt.True(t, errors.As(err, &reqErr))
	gt.V(t, reqErr.StatusCode).Equal(http.StatusServiceUnavailable)
	gt.V(t, requests.Load()).Equal(int32(4))
	gt.V(t, delays).Equal([]time.Duration{250 * time.Millisecond, 500 * time.Millisecond, time.Second})
}
