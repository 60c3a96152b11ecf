// Package render serializes document trees to bytes.
//
// This package is part of the Functional Core - it turns values into bytes
// and performs no I/O of its own.
//
// # Formats
//
//   - json: field order preserved, numbers written exactly as parsed
//   - yaml: block style via gopkg.in/yaml.v3, strings that would read back as
//     another type are quoted
//   - xml: a "deployment" root element with one child element per field
//
// # Usage
//
//	format, err := render.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	out, err := render.Render(doc, render.Options{Format: format, Pretty: true})
package render
