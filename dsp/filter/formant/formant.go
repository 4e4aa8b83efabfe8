// Package formant designs the static nasal (/m/) formant filter applied to
// the synthesized voice.
//
// The resonances follow Russell's pole/zero model of nasal consonants. The
// lowest pole and zero carry the nasal murmur and stay fixed; the others
// are moved along the ERB scale by a morph factor, which shifts the
// perceived vocal-tract size.
package formant

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-voicemorph/dsp/erb"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/design/pass"
)

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("formant: invalid sample rate")
	// ErrInvalidMorph is returned for non-positive or non-finite morph factors.
	ErrInvalidMorph = errors.New("formant: invalid morph factor")
)

// Resonance is one conjugate root pair of the filter.
type Resonance struct {
	Freq      float64 // centre frequency in Hz
	Bandwidth float64 // -3 dB bandwidth in Hz
	Morphable bool
}

// Poles and Zeros describe the /m/ filter.
var (
	Poles = []Resonance{
		{250, 20, false},
		{1200, 80, true},
		{3000, 250, true},
		{3500, 310, true},
		{4400, 400, true},
	}
	Zeros = []Resonance{
		{400, 40, false},
		{1500, 130, true},
	}
)

// minBandwidthMorph keeps morphed bandwidths positive for small morph
// factors.
const minBandwidthMorph = 0.1

// BandwidthMorph returns the ERB exponent applied to bandwidths for a
// frequency morph m.
func BandwidthMorph(m float64) float64 {
	return math.Max(1+1.2*(m-1), minBandwidthMorph)
}

// Root places one resonance in the z-plane at sampleRate after morphing.
// It reports false when the morphed frequency is at or above Nyquist.
func (r Resonance) Root(sampleRate, morph float64) (complex128, bool) {
	fc, bw := r.Freq, r.Bandwidth
	if r.Morphable {
		fc = erb.Morph(fc, morph)
		bw = erb.Morph(bw, BandwidthMorph(morph))
	}

	if fc <= 0 || fc >= sampleRate/2 {
		return 0, false
	}

	radius := math.Exp(-math.Pi * bw / sampleRate)

	return cmplx.Rect(radius, 2*math.Pi*fc/sampleRate), true
}

// Design returns the biquad cascade of the nasal filter at sampleRate with
// the non-nasal resonances moved by morph. Resonances pushed to or above
// Nyquist are dropped.
func Design(sampleRate, morph float64) ([]biquad.Coefficients, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	if !(morph > 0) || math.IsInf(morph, 0) {
		return nil, ErrInvalidMorph
	}

	poles := roots(Poles, sampleRate, morph)
	zeros := roots(Zeros, sampleRate, 1)

	return pass.PoleZero(zeros, poles, 1), nil
}

func roots(res []Resonance, sampleRate, morph float64) []complex128 {
	out := make([]complex128, 0, len(res))
	for _, r := range res {
		if z, ok := r.Root(sampleRate, morph); ok {
			out = append(out, z)
		}
	}

	return out
}
