package types

import "github.com/google/uuid"

// RequestID identifies one command invocation in logs.
type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }
