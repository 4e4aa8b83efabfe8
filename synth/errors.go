package synth

import "errors"

var (
	// ErrEmptyInput is returned when there is no input audio to analyze.
	ErrEmptyInput = errors.New("synth: empty input")
	// ErrInvalidLength is returned for a non-positive output length.
	ErrInvalidLength = errors.New("synth: output length must be > 0")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("synth: invalid sample rate")
	// ErrInvalidPitchRange is returned when the pitch anchors are not
	// positive, finite and strictly increasing.
	ErrInvalidPitchRange = errors.New("synth: invalid pitch range")
	// ErrInvalidMorph is returned for non-positive or non-finite morph factors.
	ErrInvalidMorph = errors.New("synth: invalid morph factor")
	// ErrUnknownMethod is returned for an unsupported excitation method.
	ErrUnknownMethod = errors.New("synth: unknown synthesis method")
	// ErrAnalysis wraps failures of the pitch analyzer.
	ErrAnalysis = errors.New("synth: pitch analysis failed")

	errNoNoise = errors.New("synth: noise source returned too few samples")
)
