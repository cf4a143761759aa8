package aggregator

import (
	"strings"

	"go-greatest/pkg/greatest"
	"go-greatest/pkg/types"

	"github.com/pkg/errors"
)

const (
	MAX      = "MAX"
	GREATEST = "GREATEST"
)

var ErrUnknownAggregate = errors.New("unknown aggregate function")

type Aggregator interface {
	Value() types.Scalar
	Apply(values ...types.Scalar)
	Merge(other Aggregator)
	Reset()
}

// New returns the aggregate called name. A nil reducer uses the package
// level defaults of greatest.
func New(name string, r *greatest.Reducer) (Aggregator, error) {
	switch strings.ToUpper(name) {
		case MAX, GREATEST: {
			return &AggregationMAX{reducer: r}, nil
		}
		default: {
			return nil, errors.Wrapf(ErrUnknownAggregate, "'%s'", name)
		}
	}
}
