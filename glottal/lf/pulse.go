package lf

import (
	"fmt"
	"math"
)

// Cycle tells whether a generated sample completed a period.
type Cycle int

const (
	// MidCycle means the phase stayed inside the current period.
	MidCycle Cycle = iota
	// BoundaryCrossed means the phase wrapped past 1 on this sample.
	BoundaryCrossed
)

func (c Cycle) String() string {
	switch c {
	case MidCycle:
		return "MidCycle"
	case BoundaryCrossed:
		return "BoundaryCrossed"
	default:
		return fmt.Sprintf("Cycle(%d)", int(c))
	}
}

// Boundary classifies the pre-wrap phase returned by
// [Generator.GenerateFrame].
func Boundary(prePhase float64) Cycle {
	if prePhase >= 1 {
		return BoundaryCrossed
	}

	return MidCycle
}

// Generator produces the LF waveform sample by sample. The phase advances
// by 1/period per sample, so the period may change at any sample without
// a discontinuity in phase.
type Generator struct {
	shape  Shape
	period float64
	phase  float64

	// Per-shape constants of Shape.Value.
	invSinTe float64
	invETa   float64
	tailExp  float64
}

// NewGenerator returns a Generator at phase 0 with the shape for rd and the
// given period in samples.
func NewGenerator(rd, period float64) (*Generator, error) {
	g := &Generator{}

	if err := g.SetPeriod(period); err != nil {
		return nil, err
	}

	if err := g.SetShape(rd); err != nil {
		return nil, err
	}

	return g, nil
}

// SetShape solves and installs the shape for rd. On error the previous
// shape stays in effect.
func (g *Generator) SetShape(rd float64) error {
	s, err := Solve(rd)
	if err != nil {
		return err
	}

	g.shape = s
	g.invSinTe = 1 / math.Sin(math.Pi*s.Te/s.Tp)
	g.invETa = 1 / (s.Epsilon * s.Ta)
	g.tailExp = math.Exp(-s.Epsilon * (s.Tc - s.Te))

	return nil
}

// SetPeriod sets the period in samples. Fractional periods are allowed. The
// current phase is kept; only the rate of future advance changes.
func (g *Generator) SetPeriod(samples float64) error {
	if !(samples > 0) || math.IsInf(samples, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, samples)
	}

	g.period = samples

	return nil
}

// GenerateFrame advances the phase by one sample and returns the waveform
// value at the new phase together with the phase before wrapping. Pass the
// latter to [Boundary] to detect the end of a cycle.
func (g *Generator) GenerateFrame() (sample, prePhase float64) {
	t := g.phase + 1/g.period
	prePhase = t

	if t >= 1 {
		t -= math.Floor(t)
	}

	g.phase = t

	return g.value(t), prePhase
}

func (g *Generator) value(t float64) float64 {
	s := &g.shape

	switch {
	case t <= s.Te:
		return -math.Exp(s.Alpha*(t-s.Te)) * math.Sin(math.Pi*t/s.Tp) * g.invSinTe
	case t <= s.Tc:
		return -g.invETa * (math.Exp(-s.Epsilon*(t-s.Te)) - g.tailExp)
	default:
		return 0
	}
}

// Value evaluates the current shape at normalized time t without touching
// the phase.
func (g *Generator) Value(t float64) float64 {
	return g.value(t)
}

// Phase returns the normalized phase in [0, 1).
func (g *Generator) Phase() float64 { return g.phase }

// Period returns the period in samples.
func (g *Generator) Period() float64 { return g.period }

// Shape returns the shape in effect.
func (g *Generator) Shape() Shape { return g.shape }
