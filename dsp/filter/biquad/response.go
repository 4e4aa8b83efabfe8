package biquad

import (
	"math"
	"math/cmplx"
)

// At evaluates the transfer function H(z) = (B0 + B1 z^-1 + B2 z^-2) /
// (1 + A1 z^-1 + A2 z^-2) at an arbitrary point z of the complex plane.
func (c *Coefficients) At(z complex128) complex128 {
	zi := 1 / z
	num := complex(c.B0, 0) + zi*(complex(c.B1, 0)+zi*complex(c.B2, 0))
	den := 1 + zi*(complex(c.A1, 0)+zi*complex(c.A2, 0))

	return num / den
}

// Response returns H on the unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.At(unitPoint(freqHz, sampleRate))
}

// MagnitudeSquared returns |H(f)|^2 without complex arithmetic, with
// cw = 2cos(w):
//
//	|N|^2 = (b0-b2)^2 + b1^2 + (b1(b0+b2) + b0 b2 cw) cw
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := sq(c.B0-c.B2) + sq(c.B1) + (c.B1*(c.B0+c.B2)+c.B0*c.B2*cw)*cw
	den := sq(1-c.A2) + sq(c.A1) + (c.A1*(1+c.A2)+c.A2*cw)*cw

	return num / den
}

// MagnitudeDB returns |H(f)| in dB.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// At evaluates the cascade transfer function, gain included.
func (c *Chain) At(z complex128) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].At(z)
	}

	return h
}

// Response returns the cascade response on the unit circle at freqHz.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	return c.At(unitPoint(freqHz, sampleRate))
}

// MagnitudeDB returns the cascade magnitude in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// unitPoint returns e^{jw} for freqHz at sampleRate.
func unitPoint(freqHz, sampleRate float64) complex128 {
	return cmplx.Rect(1, 2*math.Pi*freqHz/sampleRate)
}

func sq(x float64) float64 { return x * x }
