package types

import (
	"fmt"
	"strconv"
)

// Scalar is a single tagged value. The tag is fixed at construction and a
// typed Scalar may carry no payload (see Absent). The zero value is Null.
type Scalar struct {
	code  TypeCode
	valid bool
	i     int64   // TYPE_INT32, TYPE_INT64
	f     float64 // TYPE_FLOAT32, TYPE_FLOAT64
	b     bool
	s     string
}

func Int32(v int32) Scalar {
	return Scalar{code: TYPE_INT32, valid: true, i: int64(v)}
}

func Int64(v int64) Scalar {
	return Scalar{code: TYPE_INT64, valid: true, i: v}
}

func Float32(v float32) Scalar {
	return Scalar{code: TYPE_FLOAT32, valid: true, f: float64(v)}
}

func Float64(v float64) Scalar {
	return Scalar{code: TYPE_FLOAT64, valid: true, f: v}
}

func Bool(v bool) Scalar {
	return Scalar{code: TYPE_BOOL, valid: true, b: v}
}

func Text(v string) Scalar {
	return Scalar{code: TYPE_TEXT, valid: true, s: v}
}

// Null returns the explicit "no value" variant.
func Null() Scalar {
	return Scalar{}
}

// Absent returns a value tagged with code that carries no payload.
func Absent(code TypeCode) Scalar {
	return Scalar{code: code}
}

func (s Scalar) Code() TypeCode {
	return s.code
}

func (s Scalar) IsNumeric() bool {
	return IsNumeric(s.code)
}

// Valid reports whether the payload is present. Always false for Null.
func (s Scalar) Valid() bool {
	return s.valid
}

// IsMissing reports whether s is Null or a typed value without payload.
func (s Scalar) IsMissing() bool {
	return !s.valid
}

func (s Scalar) AsInt32() (int32, bool) {
	return int32(s.i), s.valid && s.code == TYPE_INT32
}

func (s Scalar) AsInt64() (int64, bool) {
	return s.i, s.valid && s.code == TYPE_INT64
}

func (s Scalar) AsFloat32() (float32, bool) {
	return float32(s.f), s.valid && s.code == TYPE_FLOAT32
}

func (s Scalar) AsFloat64() (float64, bool) {
	return s.f, s.valid && s.code == TYPE_FLOAT64
}

func (s Scalar) AsBool() (bool, bool) {
	return s.b, s.valid && s.code == TYPE_BOOL
}

func (s Scalar) AsText() (string, bool) {
	return s.s, s.valid && s.code == TYPE_TEXT
}

// Value returns the payload as a native Go value, nil when missing.
func (s Scalar) Value() interface{} {
	if !s.valid {
		return nil
	}

	switch s.code {
		case TYPE_INT32:   return int32(s.i)
		case TYPE_INT64:   return s.i
		case TYPE_FLOAT32: return float32(s.f)
		case TYPE_FLOAT64: return s.f
		case TYPE_BOOL:    return s.b
		case TYPE_TEXT:    return s.s
	}
	return nil
}

func (s Scalar) Equal(other Scalar) bool {
	if s.code != other.code || s.valid != other.valid {
		return false
	}
	if !s.valid {
		return true
	}

	switch s.code {
		case TYPE_INT32, TYPE_INT64:     return s.i == other.i
		case TYPE_FLOAT32, TYPE_FLOAT64: return s.f == other.f
		case TYPE_BOOL:                  return s.b == other.b
		case TYPE_TEXT:                  return s.s == other.s
	}
	return true
}

func (s Scalar) String() string {
	if s.code == TYPE_NULL {
		return s.code.String()
	}
	if !s.valid {
		return fmt.Sprintf("%v(NULL)", s.code)
	}

	var payload string
	switch s.code {
		case TYPE_INT32, TYPE_INT64: payload = strconv.FormatInt(s.i, 10)
		case TYPE_FLOAT32:           payload = strconv.FormatFloat(s.f, 'g', -1, 32)
		case TYPE_FLOAT64:           payload = strconv.FormatFloat(s.f, 'g', -1, 64)
		case TYPE_BOOL:              payload = strconv.FormatBool(s.b)
		case TYPE_TEXT:              payload = strconv.Quote(s.s)
	}
	return fmt.Sprintf("%v(%s)", s.code, payload)
}
