package biquad

import vecmath "github.com/cwbudde/algo-vecmath"

// Chain runs a cascade of sections in series behind a scalar input gain.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain scales the input of the cascade. The default is 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one zero-state section per entry of coeffs.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = Section{Coefficients: c}
	}

	return &Chain{sections: sections, gain: cfg.gain}
}

// ProcessSample runs one sample through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	y := c.gain * x
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}

	return y
}

// ProcessBlock filters buf in place, one section at a time.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		vecmath.ScaleBlockInPlace(buf, c.gain)
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset zeroes every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order is twice the section count; first-order sections count as two.
func (c *Chain) Order() int { return 2 * len(c.sections) }

func (c *Chain) NumSections() int { return len(c.sections) }

func (c *Chain) Gain() float64 { return c.gain }

// Section exposes the i-th section for inspection.
func (c *Chain) Section(i int) *Section { return &c.sections[i] }

// State snapshots the delay lines of all sections.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, 0, len(c.sections))
	for i := range c.sections {
		out = append(out, c.sections[i].State())
	}

	return out
}

// SetState restores a snapshot taken with State on the same chain.
func (c *Chain) SetState(states [][2]float64) {
	for i, st := range states[:len(c.sections)] {
		c.sections[i].SetState(st)
	}
}
