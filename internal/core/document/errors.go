package document

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// Input validation errors
	ErrEmptyInput = errors.New("document is empty")

	// JSON parsing errors
	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrTrailingData = errors.New("unexpected data after top-level value")
)

// ParseError wraps parsing errors with the parser's description of where
// parsing failed.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(message string, err error) *ParseError {
	return &ParseError{
		Message: message,
		Err:     err,
	}
}
