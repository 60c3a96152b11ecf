package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// =============================================================================
// Parser Functions
// =============================================================================

// Parse decodes a JSON document into a Value.
// This is a pure function - no I/O, no side effects.
//
// Object fields keep the order in which they appear in the input, and numbers
// keep their literal text. A key repeated within one object keeps its first
// position and its last value.
//
// Example:
//
//	doc, err := Parse([]byte(`{"b": 1, "a": [true, null]}`))
//	// doc.(*Object).Keys() == []string{"b", "a"}
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, parseError(err)
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, parseError(err)
	}
	return fromFastJSON(v)
}

// MustParse is like Parse but panics if the input cannot be parsed.
// It is intended for literals in tests and fixtures.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("document: MustParse(%q): %v", s, err))
	}
	return v
}

// parseError classifies a fastjson error. fastjson reports input left over
// after the top-level value as "unexpected tail".
func parseError(err error) *ParseError {
	msg := err.Error()
	if strings.HasPrefix(msg, "unexpected tail") {
		return NewParseError(msg, ErrTrailingData)
	}
	return NewParseError(strings.TrimPrefix(msg, "cannot parse JSON: "), ErrInvalidJSON)
}

// fromFastJSON copies a parsed value into the document model. The source is
// owned by a pooled parser, so nothing may reference it afterwards.
func fromFastJSON(v *fastjson.Value) (Value, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return nil, NewParseError(err.Error(), ErrInvalidJSON)
		}
		obj := NewObject()
		var visitErr error
		o.Visit(func(key []byte, fv *fastjson.Value) {
			if visitErr != nil {
				return
			}
			val, err := fromFastJSON(fv)
			if err != nil {
				visitErr = err
				return
			}
			obj.Set(string(key), val)
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return obj, nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, NewParseError(err.Error(), ErrInvalidJSON)
		}
		arr := make(Array, 0, len(items))
		for _, item := range items {
			val, err := fromFastJSON(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case fastjson.TypeString:
		s, err := v.StringBytes()
		if err != nil {
			return nil, NewParseError(err.Error(), ErrInvalidJSON)
		}
		return String(string(s)), nil
	case fastjson.TypeNumber:
		// fastjson also reads NaN and Inf, which have no JSON form
		literal := v.String()
		if !json.Valid([]byte(literal)) {
			return nil, NewParseError(fmt.Sprintf("invalid number %q", literal), ErrInvalidJSON)
		}
		return Number(literal), nil
	case fastjson.TypeTrue:
		return Bool(true), nil
	case fastjson.TypeFalse:
		return Bool(false), nil
	case fastjson.TypeNull:
		return Null(), nil
	}
	return nil, NewParseError(fmt.Sprintf("unexpected value type %s", v.Type()), ErrInvalidJSON)
}
