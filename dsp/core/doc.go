// Package core provides the small numeric helpers shared by the DSP packages:
// clamping, finite and normal checks, dB conversion and the
// ease curves used to interpolate control tracks.
package core
