// Package document provides the in-memory tree model for deployment documents.
//
// This package is part of the Functional Core: it parses bytes into values and
// offers pure operations on those values. It performs no I/O.
//
// # Values
//
// A Value is exactly one of three variants:
//
//   - *Object: string keys mapped to values, in insertion order
//   - Array: an ordered sequence of values
//   - Scalar: a string, number, boolean or null
//
// Transformers dispatch with a type switch over these three variants. Object
// field order is part of the value: it is what a renderer emits unless the
// fields are sorted explicitly.
//
// # Usage
//
//	doc, err := document.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if root, ok := doc.(*document.Object); ok {
//	    hosts, _ := root.Get("hosts")
//	    ...
//	}
package document
