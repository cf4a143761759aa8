package types

import "github.com/pkg/errors"

// promote[a][b] is the kind both sides are widened to before comparing.
// Rows and columns are indexed by code-TYPE_INT32. Integer64 x Float32
// goes to Float64 because a 64 bit integer does not fit a float32 mantissa.
var promote = [4][4]TypeCode{
	//             INT32         INT64         FLOAT32       FLOAT64
	/* INT32 */   {TYPE_INT32,   TYPE_INT64,   TYPE_FLOAT32, TYPE_FLOAT64},
	/* INT64 */   {TYPE_INT64,   TYPE_INT64,   TYPE_FLOAT64, TYPE_FLOAT64},
	/* FLOAT32 */ {TYPE_FLOAT32, TYPE_FLOAT64, TYPE_FLOAT32, TYPE_FLOAT64},
	/* FLOAT64 */ {TYPE_FLOAT64, TYPE_FLOAT64, TYPE_FLOAT64, TYPE_FLOAT64},
}

// Promote returns the common numeric kind of a and b. ok is false when
// either side is not numeric.
func Promote(a, b TypeCode) (code TypeCode, ok bool) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return TYPE_NULL, false
	}
	return promote[a-TYPE_INT32][b-TYPE_INT32], true
}

// Cast widens s to code. Only conversions along the promotion table are
// allowed, so Integer64 cannot become Float32 and nothing is narrowed.
func (s Scalar) Cast(code TypeCode) (Scalar, error) {
	if s.code == code {
		return s, nil
	}
	if to, ok := Promote(s.code, code); !ok || to != code {
		return Scalar{}, errors.Wrapf(ErrInvalidCast, "typecast from %v to %v not supported", s.code, code)
	}
	if !s.valid {
		return Absent(code), nil
	}

	switch code {
		case TYPE_INT64:   return Int64(s.i), nil
		case TYPE_FLOAT32: return Float32(float32(s.i)), nil
		case TYPE_FLOAT64: {
			if s.code == TYPE_FLOAT32 {
				return Float64(s.f), nil
			}
			return Float64(float64(s.i)), nil
		}
	}
	return Scalar{}, errors.Wrapf(ErrInvalidCast, "typecast from %v to %v not supported", s.code, code)
}
