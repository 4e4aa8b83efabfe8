package resample

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrInvalidRatio indicates an invalid up/down ratio.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// Quality selects the anti-aliasing filter of a Resampler.
type Quality int

const (
	QualityFast Quality = iota
	QualityBalanced
	QualityBest
)

// profile holds the prototype filter parameters of one quality mode.
type profile struct {
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

var profiles = map[Quality]profile{
	QualityFast:     {tapsPerPhase: 16, cutoffScale: 0.88, kaiserBeta: 5.0},
	QualityBalanced: {tapsPerPhase: 32, cutoffScale: 0.92, kaiserBeta: 7.5},
	QualityBest:     {tapsPerPhase: 64, cutoffScale: 0.96, kaiserBeta: 9.0},
}

func (q Quality) profile() profile {
	if p, ok := profiles[q]; ok {
		return p
	}

	return profiles[QualityBalanced]
}

// Option configures the resampler.
type Option func(*config)

type config struct {
	quality Quality
	maxDen  int
}

// WithQuality selects the filter quality. The default is QualityBalanced.
func WithQuality(q Quality) Option {
	return func(cfg *config) { cfg.quality = q }
}

// WithMaxDenominator bounds the denominator NewForRates may use when it
// approximates a rate ratio. The default is 4096.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{quality: QualityBalanced, maxDen: 4096}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Resampler converts whole signals by the ratio up/down.
type Resampler struct {
	up      int
	down    int
	quality Quality
	taps    []float64
	center  int
}

// NewRational creates a resampler for ratio up/down.
func NewRational(up, down int, opts ...Option) (*Resampler, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	g := gcd(up, down)
	up /= g
	down /= g

	cfg := applyOptions(opts)

	taps, err := designPrototype(up, down, cfg.quality.profile())
	if err != nil {
		return nil, err
	}

	return &Resampler{
		up:      up,
		down:    down,
		quality: cfg.quality,
		taps:    taps,
		center:  (len(taps) - 1) / 2,
	}, nil
}

// NewForRates creates a resampler by approximating outRate/inRate as a ratio.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if !validRate(inRate) || !validRate(outRate) {
		return nil, ErrInvalidRate
	}

	cfg := applyOptions(opts)
	up, down := approximateRatio(outRate/inRate, cfg.maxDen)

	return NewRational(up, down, opts...)
}

// Resample converts input from inRate to outRate as a one-shot helper.
func Resample(input []float64, inRate, outRate float64, opts ...Option) ([]float64, error) {
	r, err := NewForRates(inRate, outRate, opts...)
	if err != nil {
		return nil, err
	}

	return r.Process(input), nil
}

// OutputLen returns the number of samples Process produces for n inputs.
func (r *Resampler) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}

	return int(math.Round(float64(n) * float64(r.up) / float64(r.down)))
}

// Process converts a complete signal. Samples outside the input are
// treated as zero. A unity ratio returns a copy.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}

	if r.up == 1 && r.down == 1 {
		return slices.Clone(input)
	}

	out := make([]float64, r.OutputLen(len(input)))
	nTaps := len(r.taps)
	last := len(input) - 1

	for m := range out {
		// Position in the zero-stuffed signal, advanced by the filter delay.
		j := m*r.down + r.center

		hi := min(j/r.up, last)
		lo := max(ceilDiv(j-nTaps+1, r.up), 0)

		var y float64
		for i := lo; i <= hi; i++ {
			y += r.taps[j-i*r.up] * input[i]
		}

		out[m] = y
	}

	return out
}

// Ratio returns reduced up/down conversion factors.
func (r *Resampler) Ratio() (up, down int) {
	return r.up, r.down
}

// Quality returns the configured quality mode.
func (r *Resampler) Quality() Quality {
	return r.quality
}

// Prototype returns a copy of the prototype FIR taps at the upsampled rate.
func (r *Resampler) Prototype() []float64 {
	return slices.Clone(r.taps)
}

func validRate(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func ceilDiv(a, b int) int {
	if a >= 0 {
		return (a + b - 1) / b
	}

	return -((-a) / b)
}
