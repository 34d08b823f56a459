package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrFieldsNotObject = errors.New("fields must be a JSON object")

// Fields is an insertion-ordered set of named values. The zero value is an
// empty set ready to use.
type Fields struct {
	keys   []string
	values map[string]Value
}

// Field is one key/value pair, used to build Fields literals.
type Field struct {
	Key   string
	Value Value
}

func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// NewFields builds Fields in argument order. A repeated key overwrites the
// earlier value and keeps its position.
func NewFields(fields ...Field) Fields {
	var f Fields
	for _, fd := range fields {
		f.Set(fd.Key, fd.Value)
	}
	return f
}

func (f *Fields) Set(key string, v Value) {
	if f.values == nil {
		f.values = make(map[string]Value)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// Get returns the value stored under key. ok distinguishes an absent key from
// a key explicitly set to undefined.
func (f Fields) Get(key string) (Value, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f Fields) Len() int { return len(f.keys) }

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Each calls fn for every key in insertion order.
func (f Fields) Each(fn func(key string, v Value)) {
	for _, k := range f.keys {
		fn(k, f.values[k])
	}
}

// Clone returns a copy that shares no storage with f.
func (f Fields) Clone() Fields {
	out := Fields{
		keys:   make([]string, len(f.keys)),
		values: make(map[string]Value, len(f.values)),
	}
	copy(out.keys, f.keys)
	for k, v := range f.values {
		out.values[k] = v
	}
	return out
}

// Merge returns a copy of f with every field of patch set on it.
func (f Fields) Merge(patch Fields) Fields {
	out := f.Clone()
	patch.Each(out.Set)
	return out
}

func (f Fields) Equal(other Fields) bool {
	if f.Len() != other.Len() {
		return false
	}
	for i, k := range f.keys {
		if other.keys[i] != k || other.values[k] != f.values[k] {
			return false
		}
	}
	return true
}

func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := f.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, keeping the key order of the
// document. Nested objects and arrays are rejected.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrFieldsNotObject
	}

	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		v, err := valueFromToken(tok)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}

func valueFromToken(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Number(n), nil
	default:
		return Value{}, fmt.Errorf("unsupported value %v", t)
	}
}
