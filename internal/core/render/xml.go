package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// =============================================================================
// XML
// =============================================================================

const (
	xmlRoot = "deployment"
	xmlItem = "item"
)

func renderXML(v document.Value, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if pretty {
		enc.Indent("", "  ")
	}
	if err := writeXMLElement(enc, xmlRoot, v); err != nil {
		return nil, fmt.Errorf("render xml: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("render xml: %w", err)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// writeXMLField writes the value of an object field. An array repeats the
// field's element once per entry.
func writeXMLField(enc *xml.Encoder, name string, v document.Value) error {
	if arr, ok := v.(document.Array); ok {
		for _, el := range arr {
			if err := writeXMLElement(enc, name, el); err != nil {
				return err
			}
		}
		return nil
	}
	return writeXMLElement(enc, name, v)
}

func writeXMLElement(enc *xml.Encoder, name string, v document.Value) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch v := v.(type) {
	case *document.Object:
		for key, val := range v.All() {
			if err := writeXMLField(enc, XMLName(key), val); err != nil {
				return err
			}
		}
	case document.Array:
		for _, el := range v {
			if err := writeXMLElement(enc, xmlItem, el); err != nil {
				return err
			}
		}
	case document.Scalar:
		if !v.IsNull() {
			if err := enc.EncodeToken(xml.CharData(v.Text())); err != nil {
				return err
			}
		}
	}

	return enc.EncodeToken(start.End())
}

// XMLName turns a field name into a valid XML element name. Characters that
// cannot appear in a name become "_", and a name that cannot start an element
// gets a "_" prefix.
//
// Example:
//
//	XMLName("hdfs-DATANODE-BASE") // "hdfs-DATANODE-BASE"
//	XMLName("CDH-5.16.2")         // "CDH-5.16.2"
//	XMLName("node 1/a")           // "node_1_a"
//	XMLName("2f1e")               // "_2f1e"
func XMLName(key string) string {
	if key == "" {
		return "_"
	}

	var b strings.Builder
	for i, r := range key {
		if i == 0 && !isNameStart(r) {
			b.WriteByte('_')
			if !isNameChar(r) {
				continue
			}
		}
		if isNameChar(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || unicode.IsDigit(r) || r == '-' || r == '.'
}
