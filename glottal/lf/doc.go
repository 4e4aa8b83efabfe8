// Package lf implements the Liljencrants-Fant (LF) model of the glottal
// flow derivative.
//
// [Solve] derives the timing parameters of one normalized cycle from the
// single shape control Rd (Fant 1995) and solves the two implicit LF
// equations for the decay constants. [Generator] turns a [Shape] into a
// sample stream with a fractional, time-varying period.
//
// The cycle is normalized to Tc = 1 and the excitation peak Ee = 1; the
// waveform reaches -1 at the instant of main excitation Te.
package lf
