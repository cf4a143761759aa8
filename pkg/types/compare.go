package types

import (
	"go-greatest/util/helpers"

	"github.com/pkg/errors"
)

// Compare orders two present values of the same kind. Integers and floats
// compare numerically, false < true, text compares bytewise.
func (s Scalar) Compare(other Scalar) (int, error) {
	if s.code != other.code {
		return 0, errors.Wrapf(ErrIncomparable, "%v and %v", s.code, other.code)
	}
	if !s.valid || !other.valid {
		return 0, errors.Wrapf(ErrIncomparable, "%v without payload", s.code)
	}

	switch s.code {
		case TYPE_INT32, TYPE_INT64:     return helpers.Compare(s.i, other.i), nil
		case TYPE_FLOAT32, TYPE_FLOAT64: return helpers.Compare(s.f, other.f), nil
		case TYPE_BOOL:                  return helpers.CompareBool(s.b, other.b), nil
		case TYPE_TEXT:                  return helpers.Compare(s.s, other.s), nil
	}
	return 0, errors.Wrapf(ErrIncomparable, "%v", s.code)
}
