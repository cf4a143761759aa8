// Package greatest folds sequences of scalar values into their maximum,
// widening mixed numeric kinds before comparing them.
//
// Missing values (Null, or a typed value without payload) are skipped: they
// never replace a present running maximum and are replaced by the first
// present value that follows. Pairs with no comparison rule, such as Text
// against Integer32, keep the current value. That fallback is part of the
// contract and is not reported as an error, which makes PickMax
// order-sensitive for such pairs: partial results must always be combined
// as PickMax(partial, next) in input order.
package greatest

import (
	"go-greatest/config"
	"go-greatest/pkg/types"
	"go-greatest/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Reducer holds only diagnostic settings, the fold itself is stateless and
// a Reducer may be shared between goroutines.
type Reducer struct {
	logUnsupported bool
	level          logrus.Level
	log            *logrus.Logger
}

var std = &Reducer{}

// New returns a Reducer configured by cfg. A nil log falls back to logger.L.
func New(cfg *config.ReducerConfig, log *logrus.Logger) (*Reducer, error) {
	if cfg == nil {
		cfg = config.NewReducerConfig()
	}
	if log == nil {
		log = logger.L
	}

	level, err := logrus.ParseLevel(cfg.UnsupportedLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse unsupported pair log level")
	}

	return &Reducer{
		logUnsupported: cfg.LogUnsupported,
		level:          level,
		log:            log,
	}, nil
}

// PickMax returns the larger of current and next.
//
// Numeric kinds are widened to their common kind first and the result
// carries that kind. Booleans order false < true and text orders bytewise.
// On ties current wins. Any other pairing returns current unchanged.
func (r *Reducer) PickMax(current, next types.Scalar) types.Scalar {
	switch {
		case next.IsMissing():    return current
		case current.IsMissing(): return next
	}

	a, b := current.Code(), next.Code()
	if code, ok := types.Promote(a, b); ok {
		return pick(promote(current, code), promote(next, code))
	}
	if a == b && (a == types.TYPE_BOOL || a == types.TYPE_TEXT) {
		return pick(current, next)
	}

	r.unsupported(current, next)
	return current
}

// Greatest folds values left to right through PickMax, seeded with the
// first element. An empty input yields Null.
func (r *Reducer) Greatest(values []types.Scalar) types.Scalar {
	if len(values) == 0 {
		return types.Null()
	}

	max := values[0]
	for _, v := range values[1:] {
		max = r.PickMax(max, v)
	}
	return max
}

// GreatestInColumns reduces every group with Greatest and then folds the
// per-group maxima in group order.
func (r *Reducer) GreatestInColumns(columns [][]types.Scalar) types.Scalar {
	if len(columns) == 0 {
		return types.Null()
	}

	max := r.Greatest(columns[0])
	for _, col := range columns[1:] {
		max = r.PickMax(max, r.Greatest(col))
	}
	return max
}

func (r *Reducer) unsupported(current, next types.Scalar) {
	if !r.logUnsupported {
		return
	}

	r.log.WithFields(logrus.Fields{
		"prefix":  "greatest",
		"current": current.String(),
		"next":    next.String(),
	}).Log(r.level, "no comparison rule for pair, keeping current value")
}

// pick expects both sides to share a kind and to carry a payload.
func pick(current, next types.Scalar) types.Scalar {
	cmp, err := current.Compare(next)
	if err == nil && cmp < 0 {
		return next
	}
	return current
}

func promote(v types.Scalar, code types.TypeCode) types.Scalar {
	p, err := v.Cast(code)
	if err != nil {
		panic(errors.Wrapf(err, "failed to promote %v", v))
	}
	return p
}

func PickMax(current, next types.Scalar) types.Scalar {
	return std.PickMax(current, next)
}

func Greatest(values []types.Scalar) types.Scalar {
	return std.Greatest(values)
}

func GreatestInColumns(columns [][]types.Scalar) types.Scalar {
	return std.GreatestInColumns(columns)
}
