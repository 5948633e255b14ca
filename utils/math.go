package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Between constrains v to the closed interval described by the optional lo and hi bounds.
// A nil bound leaves that side of the interval open.
// When lo > hi the lower bound wins, since the upper bound is applied first.
func Between[T constraints.Ordered](v T, lo, hi *T) T {
	switch {
	case lo != nil && hi != nil:
		return Max(*lo, Min(v, *hi))
	case hi != nil:
		return Min(v, *hi)
	case lo != nil:
		return Max(*lo, v)
	default:
		return v
	}
}
