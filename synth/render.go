package synth

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voicemorph/dsp/core"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/design/pass"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/formant"
	"github.com/cwbudde/algo-voicemorph/glottal"
	"github.com/cwbudde/algo-voicemorph/pitch"
)

// Share of the progress range spent in the excitation loop.
const excitationShare = 0.9

type renderer struct {
	track    *pitch.Track
	fs       float64
	cfg      config
	progress *progress
	stats    Stats
}

// excite runs the per-sample drive loop.
func (r *renderer) excite(n int) ([]float64, error) {
	src, err := glottal.NewSource(r.fs)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	density := newDensity(r.track, n, r.fs)
	maxPitch := r.fs / 4
	out := make([]float64, n)

	for i := range out {
		t := float64(i) / r.fs

		below := r.track.IndexBelow(t)
		above := r.track.IndexAbove(t)
		vBelow := r.track.Voiced(below)
		vAbove := r.track.Voiced(above)

		if vBelow || vAbove {
			var f0 float64

			switch {
			case !vBelow:
				f0 = r.track.Frequency(above)
			case !vAbove:
				f0 = r.track.Frequency(below)
			default:
				f0 = core.Smoothstep(t, r.track.Time(below), r.track.Time(above),
					r.track.Frequency(below), r.track.Frequency(above))
			}

			// An extreme morph overflows frame pitches to +Inf and the
			// interpolation between them to NaN; both mean "above range".
			if math.IsNaN(f0) {
				f0 = math.Inf(1)
			}

			rd := core.Smoothstep(f0, r.cfg.loPitch, r.cfg.hiPitch, LoRd, HiRd)
			rd = ZeroRd + (rd-ZeroRd)*density.at(i)

			src.SetPitchTarget(core.Clamp(f0, MinDrivePitch, maxPitch), PitchRubber)
			src.SetShapeTarget(rd, ShapeRubber)
			src.SetVoicing(true)
		} else {
			src.SetShapeTarget(ZeroRd, UnvoicedShapeRubber)
			src.SetVoicing(false)
		}

		y, err := src.GenerateFrame()
		if err != nil {
			return nil, fmt.Errorf("synth: sample %d: %w", i, err)
		}

		if !core.IsFinite(y) {
			r.stats.NonFinite++
		}

		if !core.IsNormal(y) {
			y = 0
		}

		out[i] = y

		r.progress.step(excitationShare * float64(i+1) / float64(n))
	}

	return out, nil
}

// post applies the lowpass, noise floor, voicing envelope, formant filter
// and normalization in place.
func (r *renderer) post(out []float64) error {
	n := len(out)

	if cutoff := r.fs/2 - AntiAliasMargin; cutoff > 0 {
		biquad.NewChain(pass.ButterworthLP(cutoff, AntiAliasOrder, r.fs)).ProcessBlock(out)
	}

	if err := r.addNoise(out); err != nil {
		return err
	}

	r.progress.step(excitationShare + 0.03)

	vecmath.MulBlockInPlace(out, voicingEnvelope(r.track, n, r.fs))

	r.progress.step(excitationShare + 0.06)

	coeffs, err := formant.Design(r.fs, r.cfg.filterMorph)
	if err != nil {
		return fmt.Errorf("synth: formant filter: %w", err)
	}

	biquad.NewChain(coeffs).ProcessBlock(out)

	for i, v := range out {
		if !core.IsFinite(v) {
			r.stats.NonFinite++
			out[i] = 0
		}
	}

	peak := vecmath.MaxAbs(out)
	r.stats.Peak = peak

	if peak > 0 {
		vecmath.ScaleBlockInPlace(out, 1/peak)
	}

	return nil
}

// addNoise mixes in tilted noise at RelativeNoiseGain of the current peak.
func (r *renderer) addNoise(out []float64) error {
	n := len(out)

	nz, err := r.cfg.noise.Tilted(n, NoiseTiltDB)
	if err != nil {
		return fmt.Errorf("synth: noise: %w", err)
	}

	if len(nz) < n {
		return fmt.Errorf("%w: %d < %d", errNoNoise, len(nz), n)
	}

	nz = nz[:n]

	peak := vecmath.MaxAbs(out)
	noisePeak := vecmath.MaxAbs(nz)

	if peak == 0 || noisePeak == 0 || math.IsNaN(noisePeak) {
		return nil
	}

	scaled := make([]float64, n)
	vecmath.ScaleBlock(scaled, nz, RelativeNoiseGain*peak/noisePeak)
	vecmath.AddBlockInPlace(out, scaled)

	return nil
}
