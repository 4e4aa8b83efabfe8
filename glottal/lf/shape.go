package lf

import (
	"fmt"
	"math"
)

const (
	// Tc is the normalized cycle length.
	Tc = 1.0

	// rdBranch separates the low- and high-Rd regressions.
	rdBranch = 2.7
	// trivialEpsilon bounds the spurious epsilon = 0 root.
	trivialEpsilon  = 1e-9
	epsilonSeedBias = 1e-13
	alphaSeed       = 4.42
)

// Shape holds the normalized LF timing and decay parameters of one cycle.
type Shape struct {
	Rd float64

	Tp float64 // peak of the glottal flow
	Te float64 // instant of main excitation
	Ta float64 // return phase time constant
	Tc float64 // cycle end, always 1

	Alpha   float64 // growth rate of the open phase
	Epsilon float64 // decay rate of the return phase
}

// Solve computes the LF shape for a given Rd.
func Solve(rd float64) (Shape, error) {
	if !(rd > 0) || math.IsInf(rd, 0) {
		return Shape{}, fmt.Errorf("%w: %v", ErrInvalidRd, rd)
	}

	s := Shape{Rd: rd, Tc: Tc}
	s.Tp, s.Te, s.Ta = timeParameters(rd)

	if !(s.Tp > 0) || !(s.Te > 0) || s.Te > s.Tc || !(s.Ta >= 0) ||
		math.IsInf(s.Tp, 0) || math.IsInf(s.Ta, 0) {
		return Shape{}, fmt.Errorf("%w: Rd=%v gives Tp=%v Te=%v Ta=%v",
			ErrSolverDivergence, rd, s.Tp, s.Te, s.Ta)
	}

	eps, err := solveEpsilon(s.Te, s.Ta)
	if err != nil {
		return Shape{}, fmt.Errorf("lf: epsilon for Rd=%v: %w", rd, err)
	}

	s.Epsilon = eps

	alpha, err := Newton(alphaFunc(s.Tp, s.Te, s.Ta, eps), alphaSeed)
	if err != nil {
		return Shape{}, fmt.Errorf("lf: alpha for Rd=%v: %w", rd, err)
	}

	s.Alpha = alpha

	return s, nil
}

// timeParameters applies Fant's Rd regressions.
func timeParameters(rd float64) (tp, te, ta float64) {
	var rap, rkp, rgp float64

	if rd <= rdBranch {
		if rd >= 0.21 {
			rap = (-1 + 4.8*rd) / 100
		}

		rkp = (22.4 + 11.8*rd) / 100
		rgp = 0.25 * rkp / ((0.11*rd)/(0.5+1.2*rkp) - rap)
	} else {
		oqUpp := 1 - 1/(2.17*rd)
		rgp = 0.00935 + 5.96/(7.96-2*oqUpp)
		rkp = 2*rgp*oqUpp - 1.04
		rap = (-1 + 4.8*rd) / 100
	}

	tp = 1 / (2 * rgp)
	te = tp * (rkp + 1)
	ta = rap

	return tp, te, ta
}

func solveEpsilon(te, ta float64) (float64, error) {
	d := Tc - te
	fn := RootFunc{
		F: func(e float64) float64 {
			return 1 - math.Exp(-e*d) - e*ta
		},
		DF: func(e float64) float64 {
			return d*math.Exp(-e*d) - ta
		},
	}

	eps, err := Newton(fn, 1/(ta+epsilonSeedBias), WithLowerBound(0))
	if err != nil {
		return 0, err
	}

	if eps <= trivialEpsilon {
		return 0, fmt.Errorf("%w: converged to trivial root %g", ErrSolverDivergence, eps)
	}

	return eps, nil
}

// alphaFunc is the zero-net-flow condition: the open phase integral cancels
// the return phase integral a.
func alphaFunc(tp, te, ta, eps float64) RootFunc {
	d := Tc - te
	wg := math.Pi / tp
	tail := math.Exp(-eps * d)
	a := (1-tail)/(eps*eps*ta) - d*tail/(eps*ta)

	sinTe := math.Sin(wg * te)
	cosTe := math.Cos(wg * te)

	return RootFunc{
		F: func(x float64) float64 {
			return (x*x+wg*wg)*sinTe*a + wg*math.Exp(-x*te) + x*sinTe - wg*cosTe
		},
		DF: func(x float64) float64 {
			return (2*a*x+1)*sinTe - wg*te*math.Exp(-x*te)
		},
	}
}

// Value evaluates the flow derivative at normalized time t with Ee = 1.
func (s Shape) Value(t float64) float64 {
	switch {
	case t <= s.Te:
		return -math.Exp(s.Alpha*(t-s.Te)) * math.Sin(math.Pi*t/s.Tp) / math.Sin(math.Pi*s.Te/s.Tp)
	case t <= s.Tc:
		return -1 / (s.Epsilon * s.Ta) * (math.Exp(-s.Epsilon*(t-s.Te)) - math.Exp(-s.Epsilon*(s.Tc-s.Te)))
	default:
		return 0
	}
}
