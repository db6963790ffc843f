package github

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrEmptyData means a successful GraphQL response had no data. It is never retried.
	ErrEmptyData = goerr.New("GitHub API returned empty data")

	// ErrUnexpectedData means the response data did not have the expected shape.
	ErrUnexpectedData = goerr.New("GitHub API returned unexpected data structure")
)

// RequestFailedError is a non-2xx HTTP outcome, after retries for 5xx are exhausted.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (x *RequestFailedError) Error() string {
	return fmt.Sprintf("GitHub API request failed (%d): %s", x.StatusCode, x.Body)
}

// GraphQLError is an application level rejection reported inside a 200 response.
type GraphQLError struct {
	Messages []string
}

func (x *GraphQLError) Error() string {
	return "GraphQL Error: " + strings.Join(x.Messages, ", ")
}

// TransportError is a failure to get any HTTP response, after all retries.
type TransportError struct {
	URL      string
	Attempts int
	Err      error
}

func (x *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed after %d attempts: %v", x.URL, x.Attempts, x.Err)
}

func (x *TransportError) Unwrap() error {
	return x.Err
}

// StatusCode returns the HTTP status of a RequestFailedError in err's chain, or 0.
func StatusCode(err error) int {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the REST API.
func IsNotFound(err error) bool {
	return StatusCode(err) == 404
}
