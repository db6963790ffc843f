package types

import "log/slog"

type (
	// GitHubToken is a personal access token. It never appears in logs or error values.
	GitHubToken string

	// ListID is the GraphQL node ID of a user List.
	ListID string

	// RepositoryID is the GraphQL node ID of a repository (REST `node_id`).
	RepositoryID string
)

const (
	// GitHubAPIURL is the REST API origin.
	GitHubAPIURL = "https://api.github.com"
	// GitHubGraphQLURL is the GraphQL endpoint.
	GitHubGraphQLURL = "https://api.github.com/graphql"
	// UserAgent is sent with every request.
	UserAgent = "Stardust-CLI"
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x ListID) String() string { return string(x) }

func (x RepositoryID) String() string { return string(x) }

// ListIDs converts plain strings to ListID values.
func ListIDs(ids ...string) []ListID {
	resp := make([]ListID, len(ids))
	for i, id := range ids {
		resp[i] = ListID(id)
	}
	return resp
}
