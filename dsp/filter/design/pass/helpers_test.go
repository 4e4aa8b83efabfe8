package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(c.Response(freq, sr))
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()

	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite coefficient in %#v", c)
		}
	}

	if !c.Stable() {
		t.Fatalf("unstable section %#v", c)
	}
}
