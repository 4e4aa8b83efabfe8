package synth

// Callbacks are throttled to about this many per call.
const progressSteps = 100

// progress forwards monotone fractions to a callback, throttled.
type progress struct {
	fn   func(float64)
	last float64
}

func newProgress(fn func(float64)) *progress {
	return &progress{fn: fn}
}

func (p *progress) step(fraction float64) {
	if p.fn == nil || fraction-p.last < 1.0/progressSteps {
		return
	}

	p.last = fraction
	p.fn(fraction)
}

func (p *progress) done() {
	if p.fn == nil {
		return
	}

	p.last = 1
	p.fn(1)
}
