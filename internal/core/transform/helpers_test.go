package transform

import (
	"testing"

	"github.com/artpar/cmdeploy/internal/core/document"
	"github.com/artpar/cmdeploy/internal/core/render"
)

// =============================================================================
// Test Helpers
// =============================================================================

// assertDocEqual compares got with the JSON literal want, field order included.
func assertDocEqual(t *testing.T, want string, got document.Value) {
	t.Helper()
	expected := document.MustParse(want)
	if !document.Equal(expected, got) {
		t.Errorf("document mismatch\nwant: %s\n got: %s", compact(t, expected), compact(t, got))
	}
}

func compact(t *testing.T, v document.Value) string {
	t.Helper()
	out, err := render.Render(v, render.Options{Format: render.FormatJSON})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

// walkObjects calls fn for every object in v, with the field names leading to it.
func walkObjects(v document.Value, path []string, fn func(obj *document.Object, path []string)) {
	switch v := v.(type) {
	case *document.Object:
		fn(v, path)
		for key, val := range v.All() {
			walkObjects(val, append(append([]string{}, path...), key), fn)
		}
	case document.Array:
		for _, el := range v {
			walkObjects(el, path, fn)
		}
	}
}
