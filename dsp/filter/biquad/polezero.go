package biquad

import "math/cmplx"

// FromPolePair returns an all-pole section whose denominator has the
// roots p and conj(p). The numerator is 1.
func FromPolePair(p complex128) Coefficients {
	return Coefficients{
		B0: 1,
		A1: -2 * real(p),
		A2: real(p)*real(p) + imag(p)*imag(p),
	}
}

// FromConjugatePairs returns a section with zeros at z, conj(z) and poles at
// p, conj(p). B0 is 1; overall gain is left to the caller.
func FromConjugatePairs(z, p complex128) Coefficients {
	c := FromPolePair(p)
	c.B1 = -2 * real(z)
	c.B2 = real(z)*real(z) + imag(z)*imag(z)

	return c
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}

	return true
}

// Stable reports whether every section in the chain is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}

	return true
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	sqrtDiscriminant := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
