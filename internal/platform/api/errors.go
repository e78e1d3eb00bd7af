// Package api implements the HTTP client for the remote POS backend.
package api

import (
	"errors"
	"fmt"

	"github.com/stocklane/stocklane/internal/observability"
)

// RemoteError indicates the server responded with a non-Success status.
// Message carries the server-provided text verbatim when present.
type RemoteError struct {
	Resource string
	Message  string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s: request rejected", e.Resource)
}

// NetworkError indicates the request did not complete at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage derives the toast text for a failed call: the server message
// verbatim when one exists, otherwise the action-specific fallback.
func UserMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}

// Outcome maps a call error to its metric label.
func Outcome(err error) string {
	var network *NetworkError
	if errors.As(err, &network) {
		return observability.OutcomeNetwork
	}
	return observability.OutcomeRemote
}
