package mdp

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any type supporting +.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Max maps every element of set through value and returns the largest result.
// The second return is false when set yields nothing.
//
// value is called exactly once per element, in order. A later element only
// replaces the current maximum when it is strictly greater.
func Max[E any, V constraints.Ordered](set iter.Seq[E], value func(E) V) (V, bool) {
	var (
		best V
		ok  bool
	)
	for element := range set {
		v := value(element)
		if !ok || v > best {
			best = v
			ok = true
		}
	}
	return best, ok
}

// Sum maps every element of set through value and adds the results.
// The second return is false when set yields nothing.
func Sum[E any, V Number](set iter.Seq[E], value func(E) V) (V, bool) {
	var (
		sum V
		ok  bool
	)
	for element := range set {
		v := value(element)
		if !ok {
			sum = v
			ok = true
			continue
		}
		sum += v
	}
	return sum, ok
}
