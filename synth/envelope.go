package synth

import (
	"math"

	"github.com/cwbudde/algo-voicemorph/dsp/window"
	"github.com/cwbudde/algo-voicemorph/pitch"
)

// samples converts seconds to a sample count of at least 1.
func samples(seconds, fs float64) int {
	return max(1, int(math.Round(seconds*fs)))
}

// voicedFlags returns 1 or 0 for the nearest track frame of every sample
// index in [start, start+count).
func voicedFlags(track *pitch.Track, start, count int, fs float64) []float64 {
	flags := make([]float64, count)
	for k := range flags {
		if track.Voiced(track.Index(float64(start+k) / fs)) {
			flags[k] = 1
		}
	}

	return flags
}

// density is the fraction of voiced samples in a DensityWindow span
// centered on each output sample.
type density struct {
	length int
	cum    []float64
}

func newDensity(track *pitch.Track, n int, fs float64) *density {
	length := samples(DensityWindow, fs)
	flags := voicedFlags(track, -length/2, n+length, fs)

	cum := make([]float64, len(flags)+1)
	for k, v := range flags {
		cum[k+1] = cum[k] + v
	}

	return &density{length: length, cum: cum}
}

// at returns the density around sample i, covering samples
// i-length/2 .. i-length/2+length-1.
func (d *density) at(i int) float64 {
	return (d.cum[i+d.length] - d.cum[i]) / float64(d.length)
}

// voicingEnvelope returns per-sample weights for n output samples. Every
// EnvelopeHop a Hann-weighted voiced fraction of the track around the hop
// start scales a Welch taper that is overlap-added into the weights.
func voicingEnvelope(track *pitch.Track, n int, fs float64) []float64 {
	length := samples(EnvelopeWindow, fs)
	hop := samples(EnvelopeHop, fs)
	half := length / 2

	hann := window.Generate(window.TypeHann, length, window.WithPeriodic())
	welch := window.Generate(window.TypeWelch, length, window.WithPeriodic())

	quot := 0.0
	for _, w := range hann {
		quot += w
	}

	weights := make([]float64, n)
	hops := n / hop

	if hops == 0 || quot == 0 {
		return weights
	}

	flags := voicedFlags(track, -half, (hops-1)*hop+length, fs)

	for q := range hops {
		start := q * hop

		sum := 0.0
		for j, w := range hann {
			sum += w * flags[start+j]
		}

		frac := sum / quot
		if frac == 0 {
			continue
		}

		for j, w := range welch {
			idx := start + j - half
			if idx >= 0 && idx < n {
				weights[idx] += w * frac
			}
		}
	}

	return weights
}
