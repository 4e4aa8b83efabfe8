package core

// S2 is the quintic ease 6x^5 - 15x^4 + 10x^3. It maps [0, 1] onto [0, 1]
// with zero first and second derivatives at both ends.
func S2(x float64) float64 {
	x2 := x * x
	x3 := x * x2

	return x3 * (10 + x*(6*x-15))
}

// Smoothstep maps x from [x0, x1] onto [y0, y1] through [S2]. Outside the
// input range the result saturates at y0 or y1. A degenerate range
// (x1 <= x0) returns y0 for x <= x0 and y1 otherwise.
func Smoothstep(x, x0, x1, y0, y1 float64) float64 {
	if x <= x0 {
		return y0
	}

	if x >= x1 {
		return y1
	}

	t := (x - x0) / (x1 - x0)

	return y0 + S2(t)*(y1-y0)
}
