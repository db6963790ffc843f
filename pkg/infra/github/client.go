// Package github is the API-access layer for GitHub Lists and stars: a retrying transport, GraphQL and
// REST executors sharing one error taxonomy, a page walker, and the Lists operations built on them.
package github

import (
	"net/http"
	"strings"
	"time"

	"github.com/stardust-cli/stardust/pkg/domain/interfaces"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/infra"
)

// defaultConcurrency caps how many Lists have their items fetched at the same time.
const defaultConcurrency = 8

type Client struct {
	transport   *Transport
	restURL     string
	graphqlURL  string
	concurrency int
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

func New(options ...Option) *Client {
	client := &Client{
		transport:   NewTransport(http.DefaultClient),
		restURL:     types.GitHubAPIURL,
		graphqlURL:  types.GitHubGraphQLURL,
		concurrency: defaultConcurrency,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func WithHTTPClient(httpClient infra.HTTPClient) Option {
	return func(x *Client) {
		if httpClient != nil {
			x.transport.httpClient = httpClient
		}
	}
}

// WithRetries sets how many times a request is retried after the first attempt.
func WithRetries(retries int) Option {
	return func(x *Client) {
		x.transport.retries = max(retries, 0)
	}
}

// WithBackoff sets the delay before the first retry. It doubles for every following retry.
func WithBackoff(initial time.Duration) Option {
	return func(x *Client) {
		x.transport.initialDelay = initial
	}
}

// WithSleep replaces the function used to wait between retries.
func WithSleep(sleep SleepFunc) Option {
	return func(x *Client) {
		x.transport.sleep = sleep
	}
}

// WithRESTURL replaces the REST API origin, e.g. for GitHub Enterprise.
func WithRESTURL(url string) Option {
	return func(x *Client) {
		x.restURL = strings.TrimRight(url, "/")
	}
}

func WithGraphQLURL(url string) Option {
	return func(x *Client) {
		x.graphqlURL = url
	}
}

// WithConcurrency caps concurrent per-List item fetches. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(x *Client) {
		x.concurrency = max(n, 1)
	}
}

func (x *Client) header(authorization string) http.Header {
	h := http.Header{}
	h.Set("User-Agent", types.UserAgent)
	h.Set("Authorization", authorization)
	h.Set("Content-Type", "application/json")
	return h
}

func (x *Client) resolveURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return x.restURL + endpoint
}
