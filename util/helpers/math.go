package helpers

import "golang.org/x/exp/constraints"

// Compare returns -1, 0 or 1. Unordered floats (NaN) compare as equal.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
		case a < b: return -1
		case a > b: return 1
	}
	return 0
}

func CompareBool(a, b bool) int {
	switch {
		case a == b: return 0
		case b:      return -1
	}
	return 1
}
