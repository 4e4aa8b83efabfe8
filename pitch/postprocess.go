package pitch

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-voicemorph/dsp/core"
)

// gate unvoices frames more than gateDB below the loudest frame.
func gate(frames []Frame, levels []float64, gateDB float64) {
	loudest := slices.Max(levels)
	if loudest == 0 {
		for i := range frames {
			frames[i].Voiced = false
			frames[i].Frequency = 0
		}

		return
	}

	floor := loudest * core.DBToLinear(gateDB)
	for i := range frames {
		if levels[i] < floor {
			frames[i].Voiced = false
			frames[i].Frequency = 0
		}
	}
}

// dropShortRuns unvoices voiced runs shorter than minRun frames.
func dropShortRuns(frames []Frame, minRun int) {
	if minRun <= 1 {
		return
	}

	for start := 0; start < len(frames); {
		if !frames[start].Voiced {
			start++
			continue
		}

		end := start
		for end < len(frames) && frames[end].Voiced {
			end++
		}

		if end-start < minRun {
			for i := start; i < end; i++ {
				frames[i].Voiced = false
				frames[i].Frequency = 0
			}
		}

		start = end
	}
}

// medianSmooth replaces each voiced frequency by the median of the voiced
// frequencies in a centered window of length frames. Octave jumps lasting
// less than half the window are removed.
func medianSmooth(frames []Frame, length int) {
	if length < 2 {
		return
	}

	half := length / 2
	smoothed := make([]float64, len(frames))
	window := make([]float64, 0, length)

	for i, f := range frames {
		if !f.Voiced {
			continue
		}

		window = window[:0]
		for j := max(0, i-half); j <= min(len(frames)-1, i+half); j++ {
			if frames[j].Voiced {
				window = append(window, frames[j].Frequency)
			}
		}

		slices.Sort(window)
		smoothed[i] = stat.Quantile(0.5, stat.Empirical, window, nil)
	}

	for i := range frames {
		if frames[i].Voiced {
			frames[i].Frequency = smoothed[i]
		}
	}
}
