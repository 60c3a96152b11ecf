package source

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// Input selection errors
	ErrNoInput          = errors.New("no input: set a file or a URL")
	ErrConflictingInput = errors.New("conflicting input: set either a file or a URL, not both")

	// Fetch errors
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// FetchError reports a deployment endpoint that answered with a non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int
	Body       string // first bytes of the response body, if any
}

func (e *FetchError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("fetch %s: %v %d: %s", e.URL, ErrUnexpectedStatus, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fetch %s: %v %d", e.URL, ErrUnexpectedStatus, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return ErrUnexpectedStatus
}
