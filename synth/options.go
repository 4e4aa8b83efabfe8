package synth

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/cwbudde/algo-voicemorph/pitch"
)

// Method selects the excitation model.
type Method int

const (
	// MethodLF drives a Liljencrants-Fant glottal flow derivative.
	MethodLF Method = iota
)

func (m Method) String() string {
	switch m {
	case MethodLF:
		return "lf"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method named s (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf", "":
		return MethodLF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// NoiseSource supplies the noise floor mixed into the output.
// *noise.Generator implements it.
type NoiseSource interface {
	Tilted(length int, tiltDB float64) ([]float64, error)
}

type config struct {
	sampleRate  float64
	pitchMorph  float64
	filterMorph float64
	method      Method
	loPitch     float64
	hiPitch     float64
	progress    func(float64)
	logger      *slog.Logger
	analyzer    pitch.Analyzer
	noise       NoiseSource
}

// Option configures a synthesis call.
type Option func(*config)

func defaultConfig() config {
	return config{
		sampleRate:  DefaultSampleRate,
		pitchMorph:  1,
		filterMorph: 1,
		method:      MethodLF,
		loPitch:     DefaultLoPitch,
		hiPitch:     DefaultHiPitch,
		logger:      slog.New(slog.DiscardHandler),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSampleRate sets the output sample rate in Hz. Default 48000.
func WithSampleRate(hz float64) Option {
	return func(c *config) {
		c.sampleRate = hz
	}
}

// WithPitchMorph sets the ERB-scale exponent applied to the pitch contour.
// 1 keeps the pitch.
func WithPitchMorph(m float64) Option {
	return func(c *config) {
		c.pitchMorph = m
	}
}

// WithFilterMorph sets the ERB-scale exponent applied to the morphable
// formants. 1 keeps them.
func WithFilterMorph(m float64) Option {
	return func(c *config) {
		c.filterMorph = m
	}
}

// WithMethod selects the excitation model.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithPitchRange sets the pitches (Hz) mapped to the pressed (LoRd) and
// the lax (HiRd) ends of the shape range. Defaults 80 and 300.
func WithPitchRange(lo, hi float64) Option {
	return func(c *config) {
		c.loPitch = lo
		c.hiPitch = hi
	}
}

// WithProgress installs a callback receiving the completed fraction in
// [0, 1]. It is called from the synthesizing goroutine.
func WithProgress(fn func(fraction float64)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithLogger sets the logger. Nil keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAnalyzer replaces the default YIN pitch analyzer.
func WithAnalyzer(a pitch.Analyzer) Option {
	return func(c *config) {
		c.analyzer = a
	}
}

// WithNoiseSource replaces the default seeded noise generator.
func WithNoiseSource(n NoiseSource) Option {
	return func(c *config) {
		c.noise = n
	}
}

func (c config) validate() error {
	if !validPositive(c.sampleRate) {
		return fmt.Errorf("%w: output %v", ErrInvalidSampleRate, c.sampleRate)
	}

	if !validPositive(c.pitchMorph) {
		return fmt.Errorf("%w: pitch %v", ErrInvalidMorph, c.pitchMorph)
	}

	if !validPositive(c.filterMorph) {
		return fmt.Errorf("%w: filter %v", ErrInvalidMorph, c.filterMorph)
	}

	if !validPositive(c.loPitch) || !validPositive(c.hiPitch) || c.hiPitch <= c.loPitch {
		return fmt.Errorf("%w: %v..%v Hz", ErrInvalidPitchRange, c.loPitch, c.hiPitch)
	}

	if c.method != MethodLF {
		return fmt.Errorf("%w: %v", ErrUnknownMethod, c.method)
	}

	return nil
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
