// Package synth resynthesizes a voice from its pitch contour.
//
// The contour comes from a [pitch.Analyzer] (by default [pitch.YIN]) or
// is supplied directly with [FromTrack]. Each output sample drives a
// [glottal.Source] with a morphed pitch and an Rd shape derived from it.
// The excitation is then lowpassed, mixed with a -2 dB/octave noise floor,
// weighted by an overlap-add voicing envelope, passed through a static
// nasal formant filter and peak-normalized.
//
// Basic usage:
//
//	out, err := synth.Generate(samples, 16000, synth.OutputLength(len(samples), 16000, 48000),
//		synth.WithPitchMorph(1.2),
//		synth.WithFilterMorph(0.9),
//	)
package synth
