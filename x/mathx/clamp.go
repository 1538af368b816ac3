package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Callers must pass lo <= hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}
