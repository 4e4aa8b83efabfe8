// Package testutil holds deterministic test signals and comparison helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a sine at freqHz starting at
// phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Harmonic returns a tone at f0 whose first n harmonics have amplitude
// amplitude/h, a crude stand-in for a voiced vowel.
func Harmonic(f0, sampleRate, amplitude float64, harmonics, length int) []float64 {
	out := make([]float64, length)

	for h := 1; h <= harmonics; h++ {
		step := 2 * math.Pi * f0 * float64(h) / sampleRate
		a := amplitude / float64(h)

		for i := range out {
			out[i] += a * math.Sin(step*float64(i))
		}
	}

	return out
}

// DeterministicNoise returns uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// PeakAbs returns max |x|, or 0 for an empty slice.
func PeakAbs(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}
