package render

import (
	"fmt"
	"strings"
)

// Format is an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatJSON, FormatYAML, FormatXML}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a format name. Matching ignores case and surrounding
// space; the empty name selects JSON.
//
// Example:
//
//	ParseFormat("YAML") // FormatYAML, nil
//	ParseFormat("")     // FormatJSON, nil
//	ParseFormat("toml") // "", ErrUnknownFormat
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatJSON, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
