// Package noise generates deterministic, seeded noise signals.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrInvalidLength is returned when a non-positive length is requested.
var ErrInvalidLength = errors.New("noise: length must be > 0")

// octaveDB is 20*log10(2), the dB size of one octave step in amplitude.
var octaveDB = 20 * math.Log10(2)

// Generator produces noise from a seeded pseudo-random source. Successive
// calls continue the same random sequence. A Generator is not safe for
// concurrent use.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	g.rng = rand.New(rand.NewSource(g.seed))

	return g
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 { return g.seed }

// Reset rewinds the random sequence to its seed.
func (g *Generator) Reset() {
	g.rng.Seed(g.seed)
}

// White returns length samples of uniform white noise in [-1, 1).
func (g *Generator) White(length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = g.rng.Float64()*2 - 1
	}

	return out, nil
}

// Tilted returns length samples of noise whose amplitude spectrum falls
// (or rises) by tiltDB per octave. DC is removed and the result is scaled
// to a peak of 1.
//
// White noise is shaped in the frequency domain over the next power of two
// and truncated, so the spectral slope holds in the circular sense.
func (g *Generator) Tilted(length int, tiltDB float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	fftSize := nextPowerOf2(length)
	if fftSize < 2 {
		fftSize = 2
	}

	white, err := g.White(fftSize)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}

	timeBuf := make([]complex128, fftSize)
	for i, v := range white {
		timeBuf[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)

	err = plan.Forward(freq, timeBuf)
	if err != nil {
		return nil, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	exponent := tiltDB / octaveDB

	freq[0] = 0
	for k := 1; k <= fftSize/2; k++ {
		gain := complex(math.Pow(float64(k), exponent), 0)

		freq[k] *= gain
		if k != fftSize-k {
			freq[fftSize-k] *= gain
		}
	}

	err = plan.Inverse(timeBuf, freq)
	if err != nil {
		return nil, fmt.Errorf("noise: inverse FFT failed: %w", err)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = real(timeBuf[i])
	}

	if peak := vecmath.MaxAbs(out); peak > 0 {
		vecmath.ScaleBlockInPlace(out, 1/peak)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
