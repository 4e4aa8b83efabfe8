// Package wavio reads and writes mono float audio as PCM WAV files.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	// ErrInvalidFile is returned when the input is not a readable WAV file.
	ErrInvalidFile = errors.New("wavio: not a valid wav file")
	// ErrUnsupportedBitDepth is returned for bit depths other than 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("wavio: invalid sample rate")
)

const pcmFormat = 1

// Audio is a decoded WAV file mixed down to mono.
type Audio struct {
	Samples    []float64
	SampleRate int
	// Channels and BitDepth describe the source file.
	Channels int
	BitDepth int
}

// Duration returns the length in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}

	return float64(len(a.Samples)) / float64(a.SampleRate)
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// Decode reads a PCM WAV stream. Multi-channel audio is averaged to mono
// and integer samples are scaled to [-1, 1].
func Decode(r io.ReadSeeker) (*Audio, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, ErrInvalidFile
	}

	scale, err := fullScale(buf.SourceBitDepth)
	if err != nil {
		return nil, err
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	out := make([]float64, frames)

	norm := 1 / (scale * float64(channels))
	for i := range out {
		sum := 0
		for c := range channels {
			sum += buf.Data[i*channels+c]
		}

		out[i] = float64(sum) * norm
	}

	return &Audio{
		Samples:    out,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		BitDepth:   buf.SourceBitDepth,
	}, nil
}

type encodeConfig struct {
	bitDepth int
	dither   bool
	seed     int64
}

// Option configures encoding.
type Option func(*encodeConfig)

// WithBitDepth sets the output bit depth (16, 24 or 32). Default 16.
func WithBitDepth(bits int) Option {
	return func(c *encodeConfig) {
		c.bitDepth = bits
	}
}

// WithDither enables or disables TPDF dither before quantization.
// Enabled by default.
func WithDither(on bool) Option {
	return func(c *encodeConfig) {
		c.dither = on
	}
}

// WithDitherSeed sets the dither noise seed.
func WithDitherSeed(seed int64) Option {
	return func(c *encodeConfig) {
		c.seed = seed
	}
}

// WriteFile encodes samples as a mono WAV file at path.
func WriteFile(path string, samples []float64, sampleRate int, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, samples, sampleRate, opts...); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Encode writes samples as mono PCM. Values outside [-1, 1] are clipped.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int, opts ...Option) error {
	cfg := encodeConfig{bitDepth: 16, dither: true, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	scale, err := fullScale(cfg.bitDepth)
	if err != nil {
		return err
	}

	x := make([]float64, len(samples))
	copy(x, samples)

	if cfg.dither {
		vecmath.AddDitherTPDF(x, 1/scale, vecmath.NewDitherState(cfg.seed))
	}

	data := make([]int, len(x))
	for i, v := range x {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * scale))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: cfg.bitDepth,
	}

	e := wav.NewEncoder(w, sampleRate, cfg.bitDepth, 1, pcmFormat)
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	if err := e.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

// fullScale returns the largest positive integer sample at bits.
func fullScale(bits int) (float64, error) {
	switch bits {
	case 16, 24, 32:
		return float64(int64(1)<<(bits-1) - 1), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
}
