package core

import "math"

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

// Clamp limits value to [lo, hi]. Swapped bounds are accepted.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsNormal reports whether x is finite, non-zero and not subnormal. Audio
// paths use it to zero out values that would otherwise poison a filter state.
func IsNormal(x float64) bool {
	return IsFinite(x) && math.Abs(x) >= smallestNormal
}

// DBToLinear converts an amplitude ratio in dB to a linear factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
