package transform

import "github.com/artpar/cmdeploy/internal/core/document"

// Transformer rewrites a document into a new document.
//
// Implementations must not mutate their input and must not retain references
// into it after Transform returns.
type Transformer interface {
	// Name identifies the pass in logs and diagnostics.
	Name() string
	Transform(doc document.Value) document.Value
}

// Stage names reported by the built-in transformers.
const (
	NameReformat = "reformat"
	NameSort     = "sort"
	NameFilter   = "filter"
	NameAPIPaths = "api-paths"
)
