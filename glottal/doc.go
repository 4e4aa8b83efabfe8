// Package glottal drives an LF pulse generator from smoothed pitch, shape
// and voicing targets.
//
// A [Source] glides its current pitch and Rd toward the most recent
// targets every sample. The smoothed pitch sets the period of the
// underlying [lf.Generator] on each sample; the smoothed shape and the
// voicing target take effect only at cycle boundaries, so every glottal
// cycle is internally consistent.
package glottal
