package render

import "errors"

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrUnknownFormat is returned for an output format name that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
)
