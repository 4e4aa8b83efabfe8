package glottal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicemorph/glottal/lf"
)

const (
	// DefaultPitch is the pitch in Hz before the first pitch target.
	DefaultPitch = 100.0
	// DefaultRd is the shape before the first shape target.
	DefaultRd = 1.0
)

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("glottal: invalid sample rate")
	// ErrInvalidPitch is returned when the smoothed pitch cannot define a
	// period (non-positive, non-finite or too small for the sample rate).
	ErrInvalidPitch = errors.New("glottal: invalid pitch")
)

// Source is a voiced excitation source. It is not safe for concurrent use.
type Source struct {
	sampleRate float64
	// Glide steps represented by one sample.
	steps float64

	shape glide
	pitch glide

	voicingTarget     bool
	voicingMultiplier float64

	gen *lf.Generator
}

// NewSource returns a Source at sampleRate in its reset state.
func NewSource(sampleRate float64) (*Source, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	s := &Source{
		sampleRate: sampleRate,
		steps:      1 / (glideStep * sampleRate),
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset restores the default pitch and shape, silences the output until the
// next cycle boundary and makes the next targets snap.
func (s *Source) Reset() error {
	gen, err := lf.NewGenerator(DefaultRd, s.sampleRate/DefaultPitch)
	if err != nil {
		return fmt.Errorf("glottal: reset: %w", err)
	}

	s.gen = gen
	s.shape = newGlide(DefaultRd)
	s.pitch = newGlide(DefaultPitch)
	s.voicingTarget = false
	s.voicingMultiplier = 0

	return nil
}

// SetShapeTarget sets the Rd target. rubber in [0, 1] is the fraction of
// the gap kept per 0.05 ms: 0 snaps, values near 1 glide slowly.
func (s *Source) SetShapeTarget(rd, rubber float64) {
	s.shape.set(rd, rubber)
}

// SetPitchTarget sets the pitch target in Hz with the same rubber semantics
// as SetShapeTarget.
func (s *Source) SetPitchTarget(hz, rubber float64) {
	s.pitch.set(hz, rubber)
}

// SetVoicing sets the voicing target. It is applied at the next cycle
// boundary.
func (s *Source) SetVoicing(voiced bool) {
	s.voicingTarget = voiced
}

// GenerateFrame produces one output sample.
//
// A pitch that cannot define a period returns ErrInvalidPitch. A shape that
// cannot be solved at a cycle boundary returns an error wrapping
// lf.ErrSolverDivergence.
func (s *Source) GenerateFrame() (float64, error) {
	s.shape.step(s.steps)
	s.pitch.step(s.steps)

	p := s.pitch.current
	if !(p > 0) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: %v Hz", ErrInvalidPitch, p)
	}

	if err := s.gen.SetPeriod(s.sampleRate / p); err != nil {
		return 0, fmt.Errorf("%w: %v Hz: %w", ErrInvalidPitch, p, err)
	}

	sample, prePhase := s.gen.GenerateFrame()
	sample *= math.Cbrt(s.voicingMultiplier)

	if lf.Boundary(prePhase) == lf.BoundaryCrossed {
		if err := s.crossBoundary(); err != nil {
			return 0, err
		}
	}

	return sample, nil
}

// crossBoundary applies the per-cycle updates: the smoothed shape goes into
// the generator and the voicing multiplier snaps to the voicing target.
func (s *Source) crossBoundary() error {
	if err := s.gen.SetShape(s.shape.current); err != nil {
		return fmt.Errorf("glottal: shape at cycle boundary: %w", err)
	}

	if s.voicingTarget {
		s.voicingMultiplier = 1
	} else {
		s.voicingMultiplier = 0
	}

	return nil
}

// Pitch returns the smoothed pitch in Hz.
func (s *Source) Pitch() float64 { return s.pitch.current }

// Shape returns the smoothed Rd. The generator picks it up at the next
// cycle boundary.
func (s *Source) Shape() float64 { return s.shape.current }

// VoicingMultiplier returns the current voicing gain before the cube root.
func (s *Source) VoicingMultiplier() float64 { return s.voicingMultiplier }

// SampleRate returns the output sample rate.
func (s *Source) SampleRate() float64 { return s.sampleRate }

// Generator exposes the underlying pulse generator for inspection.
func (s *Source) Generator() *lf.Generator { return s.gen }
