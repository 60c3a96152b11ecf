package transform

import (
	"strings"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// APIPathField is the field injected into every annotated section object.
const APIPathField = "api_path"

// APIRoot returns the API root path for a version: "v10" and "10" both give
// "/api/v10".
func APIRoot(version string) string {
	return "/api/v" + strings.TrimPrefix(version, "v")
}

// =============================================================================
// APIPathAnnotator
// =============================================================================

// APIPathAnnotator records, in every nested object, the API path that
// addresses it. It expects reformatted input: sections must already be keyed
// objects rather than arrays, since arrays are not descended.
//
// The root object is the API root and is never annotated. A nested object
// reached through field F gets its parent's path plus "/" + APIPathSegment(F),
// stored as its first field.
//
// Example:
//
//	a := NewAPIPathAnnotator("v10")
//	out := a.Transform(document.MustParse(`{"clusters": {"c1": {"services": {}}}}`))
//	// {
//	//   "clusters": {
//	//     "api_path": "/api/v10/clusters",
//	//     "c1": {
//	//       "api_path": "/api/v10/clusters/c1",
//	//       "services": {"api_path": "/api/v10/clusters/c1/services"}
//	//     }
//	//   }
//	// }
type APIPathAnnotator struct {
	root string
}

// NewAPIPathAnnotator creates an annotator rooted at /api/<version>.
func NewAPIPathAnnotator(version string) *APIPathAnnotator {
	return &APIPathAnnotator{root: APIRoot(version)}
}

func (a *APIPathAnnotator) Name() string {
	return NameAPIPaths
}

// Transform annotates doc. Non-object documents are returned as copies.
func (a *APIPathAnnotator) Transform(doc document.Value) document.Value {
	obj, ok := doc.(*document.Object)
	if !ok {
		if doc == nil {
			return document.Null()
		}
		return doc.Clone()
	}
	return a.annotate(obj, a.root)
}

func (a *APIPathAnnotator) annotate(obj *document.Object, path string) *document.Object {
	out := document.NewObject()
	if path != a.root {
		out.Set(APIPathField, document.String(path))
	}

	for key, val := range obj.All() {
		if child, ok := val.(*document.Object); ok {
			out.Set(key, a.annotate(child, path+"/"+APIPathSegment(key)))
			continue
		}
		out.Set(key, val.Clone())
	}
	return out
}
