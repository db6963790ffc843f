package config

import (
	"log/slog"
	"time"

	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	username   string
	apiURL     string
	graphqlURL string
	retries    int64
	backoff    time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Aliases:     []string{"token"},
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("STARDUST_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-username",
			Usage:       "GitHub username owning the Lists",
			Aliases:     []string{"username"},
			Category:    "GitHub",
			Destination: &x.username,
			Sources:     cli.EnvVars("STARDUST_GITHUB_USERNAME", "GITHUB_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API origin",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("STARDUST_GITHUB_API_URL"),
			Value:       types.GitHubAPIURL,
		},
		&cli.StringFlag{
			Name:        "github-graphql-url",
			Usage:       "GitHub GraphQL endpoint",
			Category:    "GitHub",
			Destination: &x.graphqlURL,
			Sources:     cli.EnvVars("STARDUST_GITHUB_GRAPHQL_URL"),
			Value:       types.GitHubGraphQLURL,
		},
		&cli.Int64Flag{
			Name:        "github-retries",
			Usage:       "Retries for 5xx responses and connection failures",
			Category:    "GitHub",
			Destination: &x.retries,
			Sources:     cli.EnvVars("STARDUST_GITHUB_RETRIES"),
			Value:       3,
		},
		&cli.DurationFlag{
			Name:        "github-retry-backoff",
			Usage:       "Delay before the first retry, doubled for each following retry",
			Category:    "GitHub",
			Destination: &x.backoff,
			Sources:     cli.EnvVars("STARDUST_GITHUB_RETRY_BACKOFF"),
			Value:       time.Second,
		},
	}
}

func (x *GitHub) Token() types.GitHubToken { return x.token }
func (x *GitHub) Username() string         { return x.username }

func (x *GitHub) New(options ...github.Option) *github.Client {
	opts := []github.Option{
		github.WithRESTURL(x.apiURL),
		github.WithGraphQLURL(x.graphqlURL),
		github.WithRetries(int(x.retries)),
		github.WithBackoff(x.backoff),
	}
	return github.New(append(opts, options...)...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("username", x.username),
		slog.String("apiURL", x.apiURL),
		slog.String("graphqlURL", x.graphqlURL),
		slog.Int64("retries", x.retries),
		slog.Duration("retryBackoff", x.backoff),
	)
}
