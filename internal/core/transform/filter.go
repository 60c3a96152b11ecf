package transform

import "github.com/artpar/cmdeploy/internal/core/document"

// =============================================================================
// Filter
// =============================================================================

// Filter removes sensitive fields (see IsSensitive) at every depth, whatever
// their value. All other fields keep their order.
type Filter struct{}

// NewFilter creates a Filter.
func NewFilter() *Filter {
	return &Filter{}
}

func (f *Filter) Name() string {
	return NameFilter
}

func (f *Filter) Transform(doc document.Value) document.Value {
	switch v := doc.(type) {
	case *document.Object:
		out := document.NewObject()
		for key, val := range v.All() {
			if IsSensitive(key) {
				continue
			}
			out.Set(key, f.Transform(val))
		}
		return out
	case document.Array:
		out := make(document.Array, len(v))
		for i, el := range v {
			out[i] = f.Transform(el)
		}
		return out
	case document.Scalar:
		return v
	}
	return document.Null()
}
