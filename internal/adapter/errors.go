package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks transport-level failures: DNS, connect, timeout.
	// The current sync cycle aborts; existing local state is untouched.
	ErrNetwork = errors.New("network failure")

	// ErrUnauthorized is mapped from HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrConflict is mapped from HTTP 409.
	ErrConflict = errors.New("server reported a conflict")

	// ErrRateLimited is mapped from HTTP 429.
	ErrRateLimited = errors.New("server rate limit exceeded")
)

// APIError carries a server-reported failure with the message the server
// chose to surface. No compensating action is taken automatically.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
