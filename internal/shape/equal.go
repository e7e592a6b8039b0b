package shape

import (
	"time"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// Equal compares two optionals: both absent is equal, one absent is not.
func Equal[T comparable](a, b opt.Optional[T]) bool {
	return EqualFunc(a, b, Eq[T])
}

// EqualFunc is Equal with a caller-supplied comparison for present values.
func EqualFunc[T any](a, b opt.Optional[T], eq func(T, T) bool) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return eq(av, bv)
}

// Eq is == as a function value.
func Eq[T comparable](a, b T) bool {
	return a == b
}

// Float64Equal compares canonical bit patterns, so NaN equals NaN and
// 0.0 differs from -0.0. This keeps equality consistent with Float64.
func Float64Equal(a, b float64) bool {
	return float64Bits(a) == float64Bits(b)
}

// TimeEqual compares timestamps at millisecond precision, matching Time.
func TimeEqual(a, b time.Time) bool {
	return a.UnixMilli() == b.UnixMilli()
}

// ListEqual returns an element-wise, order-sensitive comparison.
func ListEqual[T any](eq func(T, T) bool) func([]T, []T) bool {
	return func(a, b []T) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !eq(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}

// MapEqual returns a comparison that requires identical key sets.
func MapEqual[V any](eq func(V, V) bool) func(map[string]V, map[string]V) bool {
	return func(a, b map[string]V) bool {
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !eq(av, bv) {
				return false
			}
		}
		return true
	}
}
