package transform

import (
	"slices"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// =============================================================================
// Sorter
// =============================================================================

// Sorter orders the fields of every object in ascending byte order of their
// names. Array element order is never changed. Sorting is idempotent.
type Sorter struct{}

// NewSorter creates a Sorter.
func NewSorter() *Sorter {
	return &Sorter{}
}

func (s *Sorter) Name() string {
	return NameSort
}

func (s *Sorter) Transform(doc document.Value) document.Value {
	switch v := doc.(type) {
	case *document.Object:
		keys := v.Keys()
		slices.Sort(keys)

		out := document.NewObject()
		for _, key := range keys {
			val, _ := v.Get(key)
			out.Set(key, s.Transform(val))
		}
		return out
	case document.Array:
		out := make(document.Array, len(v))
		for i, el := range v {
			out[i] = s.Transform(el)
		}
		return out
	case document.Scalar:
		return v
	}
	return document.Null()
}
