package glottal

import (
	"math"

	"github.com/cwbudde/algo-voicemorph/dsp/core"
)

// glideStep is the real-time step (seconds) that the rubber factor refers
// to: rubber is the fraction of the remaining gap kept after 0.05 ms.
const glideStep = 0.05e-3

// glide is an exponential approach of current toward target.
type glide struct {
	current  float64
	target   float64
	velocity float64
	first    bool
}

func newGlide(value float64) glide {
	return glide{current: value, target: value, first: true}
}

// set installs a new target. The first call after construction or reset
// jumps straight to it.
func (g *glide) set(value, rubber float64) {
	if g.first {
		g.current = value
		g.first = false
	}

	g.target = value
	g.velocity = 1 - core.Clamp(rubber, 0, 1)
}

// step advances by d glide steps. keep = (1-v)^d of the gap remains.
func (g *glide) step(d float64) {
	keep := math.Pow(1-g.velocity, d)
	g.current = g.current*keep + g.target*(1-keep)
}
