package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voicemorph/dsp/noise"
	"github.com/cwbudde/algo-voicemorph/pitch"
)

// Tuning of the synthesis loop.
const (
	// ZeroRd is the shape used where nothing is voiced.
	ZeroRd = 0.6
	// LoRd is the shape at and below the low pitch anchor.
	LoRd = 0.8
	// HiRd is the shape at and above the high pitch anchor.
	HiRd = 2.7

	PitchRubber         = 0.005
	ShapeRubber         = 0.008
	UnvoicedShapeRubber = 0.002

	// MinDrivePitch is the lowest pitch (Hz) handed to the glottal source.
	MinDrivePitch = 20.0

	// DensityWindow is the span (s) of the local voicing density.
	DensityWindow = 0.020
	// EnvelopeWindow and EnvelopeHop (s) define the voicing envelope grid.
	EnvelopeWindow = 0.200
	EnvelopeHop    = 0.060

	// RelativeNoiseGain is the noise floor peak relative to the signal peak.
	RelativeNoiseGain = 0.01
	// NoiseTiltDB is the noise floor slope per octave.
	NoiseTiltDB = -2.0

	// AntiAliasOrder and AntiAliasMargin (Hz below Nyquist) define the
	// Butterworth lowpass applied to the raw excitation.
	AntiAliasOrder  = 6
	AntiAliasMargin = 2000.0

	DefaultSampleRate = 48000.0
	DefaultLoPitch    = 80.0
	DefaultHiPitch    = 300.0
)

// Stats reports on one synthesis call.
type Stats struct {
	// NonFinite counts excitation samples replaced by zero.
	NonFinite int
	// VoicedRatio is the fraction of voiced frames in the track.
	VoicedRatio float64
	// Frames is the number of frames in the track.
	Frames int
	// Peak is the output peak before normalization.
	Peak float64
}

// OutputLength returns the number of output samples that cover inLen
// samples at inRate when rendered at outRate.
func OutputLength(inLen int, inRate, outRate float64) int {
	if inLen <= 0 || !validPositive(inRate) || !validPositive(outRate) {
		return 0
	}

	return int(math.Round(float64(inLen) * outRate / inRate))
}

// Generate analyzes input at inputRate and returns outLength synthesized
// samples.
func Generate(input []float64, inputRate float64, outLength int, opts ...Option) ([]float64, error) {
	out, _, err := generate(input, inputRate, outLength, opts)

	return out, err
}

// GenerateInto is Generate with len(dst) output samples written to dst.
// dst is only written when synthesis succeeds.
func GenerateInto(dst []float64, input []float64, inputRate float64, opts ...Option) error {
	out, _, err := generate(input, inputRate, len(dst), opts)
	if err != nil {
		return err
	}

	copy(dst, out)

	return nil
}

// FromTrack renders outLength samples from an existing pitch track. The
// track is not modified.
func FromTrack(track *pitch.Track, outLength int, opts ...Option) ([]float64, error) {
	out, _, err := FromTrackStats(track, outLength, opts...)

	return out, err
}

// FromTrackStats is FromTrack that also reports synthesis statistics.
func FromTrackStats(track *pitch.Track, outLength int, opts ...Option) ([]float64, Stats, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, Stats{}, err
	}

	if outLength <= 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrInvalidLength, outLength)
	}

	if track == nil || track.Len() == 0 {
		return nil, Stats{}, pitch.ErrNoTrack
	}

	return render(track.Clone(), outLength, cfg)
}

func generate(input []float64, inputRate float64, outLength int, opts []Option) ([]float64, Stats, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, Stats{}, err
	}

	if len(input) == 0 {
		return nil, Stats{}, ErrEmptyInput
	}

	if !validPositive(inputRate) {
		return nil, Stats{}, fmt.Errorf("%w: input %v", ErrInvalidSampleRate, inputRate)
	}

	if outLength <= 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrInvalidLength, outLength)
	}

	cfg.logger.Debug("analyze", "duration", float64(len(input))/inputRate, "rate", inputRate)

	analyzer := cfg.analyzer
	if analyzer == nil {
		yin, err := pitch.NewYIN()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
		}

		analyzer = yin
	}

	track, err := analyzer.Analyze(input, inputRate)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	if track == nil || track.Len() == 0 {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrAnalysis, pitch.ErrNoTrack)
	}

	cfg.logger.Debug("pitch track", "frames", track.Len(), "voiced", track.VoicedRatio())

	return render(track, outLength, cfg)
}

func render(track *pitch.Track, n int, cfg config) ([]float64, Stats, error) {
	if cfg.noise == nil {
		cfg.noise = noise.New()
	}

	cfg.logger.Debug("synthesize",
		"samples", n,
		"fsout", cfg.sampleRate,
		"pitchMorph", cfg.pitchMorph,
		"filterMorph", cfg.filterMorph,
		"method", cfg.method,
		"loPitch", cfg.loPitch,
		"hiPitch", cfg.hiPitch,
	)

	track.Morph(cfg.pitchMorph)

	r := &renderer{
		track:    track,
		fs:       cfg.sampleRate,
		cfg:      cfg,
		progress: newProgress(cfg.progress),
	}

	out, err := r.excite(n)
	if err != nil {
		return nil, Stats{}, err
	}

	if err := r.post(out); err != nil {
		return nil, Stats{}, err
	}

	r.stats.VoicedRatio = track.VoicedRatio()
	r.stats.Frames = track.Len()

	if r.stats.NonFinite > 0 {
		cfg.logger.Warn("non-finite samples replaced", "count", r.stats.NonFinite)
	}

	r.progress.done()

	return out, r.stats, nil
}
