package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned for invalid command line or client configuration.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrValidationFailed is returned when a required identifier or field is missing. It is raised
	// before any network call and never retried.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrInvalidPlan is returned when a classification plan cannot be used.
	ErrInvalidPlan = goerr.New("invalid plan")
)
