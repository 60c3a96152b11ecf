package document

import (
	"iter"
	"strconv"
)

// =============================================================================
// Kinds
// =============================================================================

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of a document tree. The set of implementations is closed:
// *Object, Array and Scalar.
type Value interface {
	Kind() Kind
	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() Value

	isValue()
}

// =============================================================================
// Scalar
// =============================================================================

// Scalar is a leaf value. Numbers keep their literal text so that values
// round-trip without precision loss.
type Scalar struct {
	kind Kind
	text string
}

// String returns a string scalar.
func String(s string) Scalar {
	return Scalar{kind: KindString, text: s}
}

// Number returns a number scalar from its literal text, e.g. "42" or "1.5e3".
// The literal is not validated.
func Number(literal string) Scalar {
	return Scalar{kind: KindNumber, text: literal}
}

// Bool returns a boolean scalar.
func Bool(b bool) Scalar {
	return Scalar{kind: KindBool, text: strconv.FormatBool(b)}
}

// Null returns the null scalar. The zero Scalar is also null.
func Null() Scalar {
	return Scalar{kind: KindNull}
}

func (s Scalar) Kind() Kind   { return s.kind }
func (s Scalar) Clone() Value { return s }
func (Scalar) isValue()       {}

// IsNull reports whether s is the null scalar.
func (s Scalar) IsNull() bool {
	return s.kind == KindNull
}

// Text returns the textual form of the scalar: the string itself, the number
// literal, "true"/"false", or "null".
func (s Scalar) Text() string {
	if s.kind == KindNull {
		return "null"
	}
	return s.text
}

// =============================================================================
// Array
// =============================================================================

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (Array) isValue()   {}

func (a Array) Clone() Value {
	if a == nil {
		return Array(nil)
	}
	out := make(Array, len(a))
	for i, v := range a {
		out[i] = clone(v)
	}
	return out
}

// =============================================================================
// Object
// =============================================================================

type field struct {
	key   string
	value Value
}

// Object maps unique string keys to values and remembers insertion order.
// Create objects with NewObject. A nil *Object reads as empty; Set and SetAll
// on it panic.
type Object struct {
	fields []field
	index  map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

func (o *Object) Clone() Value {
	if o == nil {
		return NewObject()
	}
	out := &Object{
		fields: make([]field, len(o.fields)),
		index:  make(map[string]int, len(o.fields)),
	}
	for i, f := range o.fields {
		out.fields[i] = field{key: f.key, value: clone(f.value)}
		out.index[f.key] = i
	}
	return out
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Keys returns the field names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].value, true
}

// Set stores v under key and returns o. Replacing an existing key keeps the
// key's original position. A nil v is stored as null.
func (o *Object) Set(key string, v Value) *Object {
	if v == nil {
		v = Null()
	}
	if i, ok := o.index[key]; ok {
		o.fields[i].value = v
		return o
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, field{key: key, value: v})
	return o
}

// SetAll sets every field of other on o, in other's order.
func (o *Object) SetAll(other *Object) *Object {
	for key, v := range other.All() {
		o.Set(key, v)
	}
	return o
}

// All iterates over the fields in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, f := range o.fields {
			if !yield(f.key, f.value) {
				return
			}
		}
	}
}

func clone(v Value) Value {
	if v == nil {
		return Null()
	}
	return v.Clone()
}
