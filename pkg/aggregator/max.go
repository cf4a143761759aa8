package aggregator

import (
	"go-greatest/pkg/greatest"
	"go-greatest/pkg/types"
)

type AggregationMAX struct {
	reducer *greatest.Reducer
	Val     types.Scalar
	Count   uint64
}

func (as *AggregationMAX) Apply(values ...types.Scalar) {
	for _, v := range values {
		if as.Count == 0 {
			as.Val = v
		} else {
			as.Val = as.pickMax(as.Val, v)
		}
		as.Count++
	}
}

// Merge folds the partial maximum of other into as, with as as the current
// operand. When every pair involved has a comparison rule, merging partials
// in input order gives the same result as one pass over all of the input.
func (as *AggregationMAX) Merge(other Aggregator) {
	if o, ok := other.(*AggregationMAX); ok {
		if o.Count == 0 {
			return
		}
		as.Apply(o.Val)
		as.Count += o.Count - 1
		return
	}
	as.Apply(other.Value())
}

// Value returns Null until something was applied.
func (as *AggregationMAX) Value() types.Scalar {
	if as.Count == 0 {
		return types.Null()
	}
	return as.Val
}

func (as *AggregationMAX) Reset() {
	as.Val = types.Null()
	as.Count = 0
}

func (as *AggregationMAX) pickMax(current, next types.Scalar) types.Scalar {
	if as.reducer == nil {
		return greatest.PickMax(current, next)
	}
	return as.reducer.PickMax(current, next)
}
