package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// =============================================================================
// JSON
// =============================================================================

func renderJSON(v document.Value, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}

	if pretty {
		var indented bytes.Buffer
		if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
			return nil, fmt.Errorf("indent json: %w", err)
		}
		buf = indented
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v document.Value) error {
	switch v := v.(type) {
	case *document.Object:
		buf.WriteByte('{')
		i := 0
		for key, val := range v.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case document.Array:
		buf.WriteByte('[')
		for i, el := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case document.Scalar:
		switch v.Kind() {
		case document.KindString:
			return writeJSONString(buf, v.Text())
		default:
			buf.WriteString(v.Text())
		}

	case nil:
		buf.WriteString("null")

	default:
		return fmt.Errorf("render json: unsupported value %T", v)
	}
	return nil
}

// writeJSONString writes s as a quoted JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("render json string: %w", err)
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
