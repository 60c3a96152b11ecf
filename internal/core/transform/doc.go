// Package transform provides the tree-rewrite passes applied to deployment
// documents.
//
// This package is part of the Functional Core. Every Transformer is a pure
// function from document to document: it never mutates its input and always
// returns a freshly built tree, so passes can be chained or rerun freely.
//
// # Transformers
//
//   - Reformatter: collapses keyed arrays into maps, resolves host, cluster and
//     role config group references, flattens "items" lists
//   - Sorter: orders object fields lexicographically at every depth
//   - Filter: removes sensitive fields at every depth
//   - APIPathAnnotator: adds the API path of every nested section object
//
// # Lookup tables
//
// The field names these passes react to are fixed tables, exposed read-only
// through ArrayKeyField, APIPathSegment and IsSensitive.
package transform
