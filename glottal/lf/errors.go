package lf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRd is returned for Rd values that are not finite and positive.
	ErrInvalidRd = errors.New("lf: Rd must be finite and > 0")
	// ErrInvalidPeriod is returned for periods that are not finite and positive.
	ErrInvalidPeriod = errors.New("lf: period must be finite and > 0")

	// ErrSolverDivergence reports that a shape could not be solved. Every
	// root-finding failure wraps it.
	ErrSolverDivergence = errors.New("lf: solver diverged")

	// ErrDerivativeUnderflow reports a zero or non-finite derivative.
	ErrDerivativeUnderflow = fmt.Errorf("%w: derivative underflow", ErrSolverDivergence)
	// ErrNonFiniteIterate reports a Newton step that left the finite range.
	ErrNonFiniteIterate = fmt.Errorf("%w: non-finite iterate", ErrSolverDivergence)
	// ErrMaxIterations reports that the iteration budget ran out.
	ErrMaxIterations = fmt.Errorf("%w: iteration limit reached", ErrSolverDivergence)
)
