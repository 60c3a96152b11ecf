package render

import (
	"fmt"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// Options controls serialization.
type Options struct {
	Format Format // empty means FormatJSON
	// Pretty indents JSON and XML output by two spaces. YAML is always
	// rendered in indented block style.
	Pretty bool
}

// Render serializes v in the requested format. The output always ends with a
// newline.
func Render(v document.Value, opts Options) ([]byte, error) {
	if v == nil {
		v = document.Null()
	}

	switch opts.Format {
	case FormatJSON, "":
		return renderJSON(v, opts.Pretty)
	case FormatYAML:
		return renderYAML(v)
	case FormatXML:
		return renderXML(v, opts.Pretty)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(opts.Format))
	}
}
