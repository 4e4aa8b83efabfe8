package pass

import (
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
)

// PoleZero converts a set of conjugate root pairs into biquad sections.
//
// Each entry of zeros and poles stands for itself and its complex
// conjugate, so only one root per pair is passed. Poles are ordered from
// the unit circle inward and each zero is paired with the nearest
// remaining pole. Poles left over become all-pole sections; zeros left
// over become FIR sections. gain scales the numerator of the first
// section. The result is nil when both slices are empty.
func PoleZero(zeros, poles []complex128, gain float64) []biquad.Coefficients {
	if len(zeros) == 0 && len(poles) == 0 {
		return nil
	}

	ps := slices.Clone(poles)
	slices.SortStableFunc(ps, func(a, b complex128) int {
		return cmpDesc(cmplx.Abs(a), cmplx.Abs(b))
	})

	zs := slices.Clone(zeros)
	used := make([]bool, len(zs))

	sections := make([]biquad.Coefficients, 0, max(len(ps), len(zs)))
	for _, p := range ps {
		best := -1
		for j, z := range zs {
			if used[j] {
				continue
			}

			if best < 0 || cmplx.Abs(z-p) < cmplx.Abs(zs[best]-p) {
				best = j
			}
		}

		if best < 0 {
			sections = append(sections, biquad.FromPolePair(p))
			continue
		}

		used[best] = true
		sections = append(sections, biquad.FromConjugatePairs(zs[best], p))
	}

	for j, z := range zs {
		if used[j] {
			continue
		}

		sections = append(sections, biquad.FromConjugatePairs(z, 0))
	}

	sections[0].B0 *= gain
	sections[0].B1 *= gain
	sections[0].B2 *= gain

	return sections
}

func cmpDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
