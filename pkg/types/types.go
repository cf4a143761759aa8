package types

import (
	"fmt"

	"github.com/pkg/errors"
)

type TypeCode uint8

const (
	TYPE_NULL    TypeCode = iota // explicit "no value"
	TYPE_INT32                   // 32 bit signed integer
	TYPE_INT64                   // 64 bit signed integer
	TYPE_FLOAT32                 // 32 bit floating point number
	TYPE_FLOAT64                 // 64 bit floating point number
	TYPE_BOOL                    // boolean
	TYPE_TEXT                    // variable length string
)

var (
	ErrInvalidCast      = errors.New("invalid cast")
	ErrIncomparable     = errors.New("values are not comparable")
	ErrUnsupportedValue = errors.New("unsupported value type")
)

var typeNames = map[TypeCode]string{
	TYPE_NULL:    "Null",
	TYPE_INT32:   "Integer32",
	TYPE_INT64:   "Integer64",
	TYPE_FLOAT32: "Float32",
	TYPE_FLOAT64: "Float64",
	TYPE_BOOL:    "Boolean",
	TYPE_TEXT:    "Text",
}

var numericTypes = map[TypeCode]struct{}{
	TYPE_INT32:   {},
	TYPE_INT64:   {},
	TYPE_FLOAT32: {},
	TYPE_FLOAT64: {},
}

func (c TypeCode) String() string {
	if name, ok := typeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("TypeCode(%d)", uint8(c))
}

func IsNumeric(code TypeCode) bool {
	_, ok := numericTypes[code]
	return ok
}

// FromValue converts a native Go value into a Scalar. nil maps to Null.
func FromValue(item interface{}) (Scalar, error) {
	switch v := item.(type) {
		case nil:     return Null(), nil
		case int32:   return Int32(v), nil
		case int64:   return Int64(v), nil
		case int:     return Int64(int64(v)), nil
		case float32: return Float32(v), nil
		case float64: return Float64(v), nil
		case bool:    return Bool(v), nil
		case string:  return Text(v), nil
		case Scalar:  return v, nil
	}
	return Scalar{}, errors.Wrapf(ErrUnsupportedValue, "%T", item)
}
