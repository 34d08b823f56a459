package domain

import (
	"encoding/json"
	"strconv"
)

type ValueKind int

const (
	KindUndefined ValueKind = iota
	KindNull
	KindBool
	KindString
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "undefined"
	}
}

// Value is a single settings or participant field value. The zero Value is
// undefined.
type Value struct {
	kind ValueKind
	b    bool
	s    string
	n    float64
}

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

func Null() Value { return Value{kind: KindNull} }

func (v Value) Kind() ValueKind { return v.kind }

// AsBool reports the boolean held by v. ok is false for any other kind, so a
// string "true" is not a bool.
func (v Value) AsBool() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) AsString() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) AsNumber() (n float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindNull:
		return "null"
	default:
		return "undefined"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindString:
		return json.Marshal(v.s)
	case KindNumber:
		return json.Marshal(v.n)
	default:
		return []byte("null"), nil
	}
}
