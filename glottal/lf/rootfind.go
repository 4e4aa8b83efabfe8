package lf

import (
	"fmt"
	"math"
)

// RootFunc is a scalar function together with its derivative.
type RootFunc struct {
	F  func(x float64) float64
	DF func(x float64) float64
}

type newtonConfig struct {
	maxIter  int
	tol      float64
	lower    float64
	hasLower bool
}

// NewtonOption configures [Newton].
type NewtonOption func(*newtonConfig)

// WithMaxIterations sets the iteration budget. Default is 100.
func WithMaxIterations(n int) NewtonOption {
	return func(c *newtonConfig) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// WithTolerance sets the relative step size at which iteration stops.
// Default is 1e-12.
func WithTolerance(tol float64) NewtonOption {
	return func(c *newtonConfig) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

// WithLowerBound keeps iterates above b. A step that would reach or cross
// the bound moves halfway towards it instead.
func WithLowerBound(b float64) NewtonOption {
	return func(c *newtonConfig) {
		c.lower = b
		c.hasLower = true
	}
}

// Newton finds a root of fn starting at x0.
//
// Iteration stops when the step is within the relative tolerance of the new
// iterate or when F is exactly zero. Failures wrap [ErrSolverDivergence].
func Newton(fn RootFunc, x0 float64, opts ...NewtonOption) (float64, error) {
	cfg := newtonConfig{maxIter: 100, tol: 1e-12}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	x := x0
	for i := range cfg.maxIter {
		fx := fn.F(x)
		if fx == 0 {
			return x, nil
		}

		dfx := fn.DF(x)
		if dfx == 0 || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return x, fmt.Errorf("%w at x=%g (iteration %d)", ErrDerivativeUnderflow, x, i)
		}

		next := x - fx/dfx
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return x, fmt.Errorf("%w at x=%g (iteration %d)", ErrNonFiniteIterate, x, i)
		}

		if cfg.hasLower && next <= cfg.lower {
			next = (x + cfg.lower) / 2
		}

		if math.Abs(next-x) <= cfg.tol*math.Abs(next) {
			return next, nil
		}

		x = next
	}

	return x, fmt.Errorf("%w after %d iterations (x=%g)", ErrMaxIterations, cfg.maxIter, x)
}
