// Package biquad provides the second-order IIR runtime used by the
// voice synthesizer: the anti-alias lowpass, the pitch tracker's
// high-pass and the formant pole/zero cascade.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. Sections are cascaded
// via [Chain]. Coefficient design lives in dsp/filter/design/pass and
// dsp/filter/formant.
package biquad
