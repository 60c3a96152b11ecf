package pipeline

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrAnnotateRequiresReformat is returned when API paths are requested
	// without reformatting; the annotator only understands reformatted trees.
	ErrAnnotateRequiresReformat = errors.New("add-api-paths requires reformat")
)

// ConfigError reports a pipeline that cannot be built from the given options.
type ConfigError struct {
	Option string // e.g., "add-api-paths"
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid pipeline option %s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
