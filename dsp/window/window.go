// Package window generates the tapers used by the voicing envelope and the
// resampler's FIR design.
package window

import (
	"fmt"
	"math"
)

// Type identifies a window shape.
type Type int

const (
	TypeRectangular Type = iota
	// TypeHann is the raised cosine 0.5 - 0.5 cos(2 pi x).
	TypeHann
	// TypeWelch is the parabola 1 - (2x - 1)^2.
	TypeWelch
	// TypeKaiser uses the shape parameter set with WithAlpha as beta.
	TypeKaiser
)

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

// WithAlpha sets the Kaiser beta. Negative values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic places sample n at n/N instead of n/(N-1). Periodic Hann
// windows at half overlap sum to one.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Generate returns length coefficients of shape t, or nil for length <= 0.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{alpha: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	shape := shapeOf(t, cfg.alpha)

	span := float64(length - 1)
	if cfg.periodic {
		span = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		x := 0.0
		if span > 0 {
			x = float64(i) / span
		}

		out[i] = shape(x)
	}

	return out
}

// Kaiser returns a symmetric Kaiser window with the given beta.
func Kaiser(size int, beta float64) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	if beta < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBeta, beta)
	}

	return Generate(TypeKaiser, size, WithAlpha(beta)), nil
}

// shapeOf returns the window as a function of x in [0, 1].
func shapeOf(t Type, alpha float64) func(float64) float64 {
	switch t {
	case TypeHann:
		return func(x float64) float64 { return 0.5 - 0.5*math.Cos(2*math.Pi*x) }
	case TypeWelch:
		return func(x float64) float64 {
			d := 2*x - 1
			return 1 - d*d
		}
	case TypeKaiser:
		if alpha <= 0 {
			break
		}

		norm := besselI0(alpha)

		return func(x float64) float64 {
			d := 2*x - 1
			return besselI0(alpha*math.Sqrt(math.Max(0, 1-d*d))) / norm
		}
	}

	return func(float64) float64 { return 1 }
}

// besselI0 approximates the modified Bessel function I0 after Abramowitz
// and Stegun 9.8.1 and 9.8.2.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
