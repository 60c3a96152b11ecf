// Package pipeline assembles transformers into an ordered chain and runs a
// document through it.
//
// This package is part of the Functional Core - all functions are pure with
// no I/O.
//
// The stage order is fixed: reformat, sort, api-paths, filter. Optional stages
// are left out when not requested; the filter stage is always last, so no
// pipeline can emit a sensitive field.
//
// # Usage
//
//	p, err := pipeline.Build(pipeline.Options{
//	    Reformat:    true,
//	    Sort:        true,
//	    AddAPIPaths: true,
//	    APIVersion:  "10",
//	})
//	if err != nil {
//	    return err // add-api-paths without reformat
//	}
//	out := p.Run(doc)
package pipeline
