// Package erb converts between Hz and the equivalent-rectangular-bandwidth
// (ERB) rate scale and warps frequencies along it.
//
// The scale follows Glasberg & Moore (1990):
//
//	erb(f) = A * log10(1 + b*f),  A = 21.332..., b = 0.00437
//
// Scaling on the ERB axis is perceptually uniform, so [Morph] is used both for
// pitch contours and for formant resonances.
package erb

import "math"

const (
	// A is the ERB-rate scale factor.
	A = 21.33228113095401739888262
	// B is the ERB-rate frequency coefficient (1/Hz).
	B = 0.00437
)

// HzToERB returns the ERB rate of frequency f (Hz).
func HzToERB(f float64) float64 {
	return A * math.Log10(1+B*f)
}

// ERBToHz is the inverse of [HzToERB].
func ERBToHz(e float64) float64 {
	return (math.Pow(10, e/A) - 1) / B
}

// Morph scales f by m on the ERB axis, i.e. ERBToHz(m * HzToERB(f)),
// evaluated in closed form as ((1 + b*f)^m - 1) / b.
// Morph(f, 1) == f and Morph(0, m) == 0.
func Morph(f, m float64) float64 {
	if m == 1 {
		return f
	}

	return (math.Pow(1+B*f, m) - 1) / B
}
