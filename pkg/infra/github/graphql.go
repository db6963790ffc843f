package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/utils/safe"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Type    string `json:"type,omitempty"`
		Path    []any  `json:"path,omitempty"`
	} `json:"errors"`
}

// Query executes a GraphQL document and decodes the data payload into T.
//
// GitHub reports application errors inside a 200 envelope, so a 200 response can still fail with a
// *GraphQLError, or with ErrEmptyData when there are no errors and no data.
func Query[T any](ctx context.Context, client *Client, token types.GitHubToken, document string, variables map[string]any) (*T, error) {
	body, err := json.Marshal(graphqlRequest{Query: document, Variables: variables})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode GraphQL request")
	}

	resp, err := client.transport.Do(ctx, client.graphqlURL, &RequestSpec{
		Method: http.MethodPost,
		Header: client.header("Bearer " + string(token)),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GraphQL response", goerr.V("status", resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.Wrap(&RequestFailedError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}, "GraphQL request failed")
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode GraphQL response", goerr.V("body", string(raw)))
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return nil, goerr.Wrap(&GraphQLError{Messages: messages}, "GraphQL request rejected")
	}

	if len(envelope.Data) == 0 || bytes.Equal(bytes.TrimSpace(envelope.Data), []byte("null")) {
		return nil, goerr.Wrap(ErrEmptyData, "no data in GraphQL response")
	}

	var data T
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode GraphQL data")
	}

	return &data, nil
}
