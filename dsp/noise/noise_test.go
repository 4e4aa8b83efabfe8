package noise

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
)

func TestWhite_DeterministicPerSeed(t *testing.T) {
	a, err := New(WithSeed(7)).White(256)
	if err != nil {
		t.Fatal(err)
	}

	b, _ := New(WithSeed(7)).White(256)
	c, _ := New(WithSeed(8)).White(256)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed differs at %d", i)
		}

		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}

		same = same && a[i] == c[i]
	}

	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestReset_RestartsSequence(t *testing.T) {
	g := New(WithSeed(3), nil)
	first, _ := g.Tilted(100, -2)

	g.Reset()
	again, _ := g.Tilted(100, -2)

	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("sample %d differs after Reset", i)
		}
	}

	if g.Seed() != 3 {
		t.Fatalf("Seed() = %d", g.Seed())
	}
}

func TestTilted_PeakAndLength(t *testing.T) {
	for _, n := range []int{1, 3, 1000, 4096} {
		out, err := New().Tilted(n, -2)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		if len(out) != n {
			t.Fatalf("len = %d, want %d", len(out), n)
		}

		peak := 0.0
		for _, v := range out {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("n=%d: non-finite sample", n)
			}

			peak = math.Max(peak, math.Abs(v))
		}

		if n > 1 && math.Abs(peak-1) > 1e-12 {
			t.Fatalf("n=%d: peak = %v, want 1", n, peak)
		}
	}
}

func TestTilted_SpectralSlope(t *testing.T) {
	const n = 1 << 16

	for _, tilt := range []float64{-2, 0, -6} {
		out, err := New(WithSeed(11)).Tilted(n, tilt)
		if err != nil {
			t.Fatal(err)
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatal(err)
		}

		in := make([]complex128, n)
		for i, v := range out {
			in[i] = complex(v, 0)
		}

		spec := make([]complex128, n)
		if err := plan.Forward(spec, in); err != nil {
			t.Fatal(err)
		}

		band := func(lo, hi int) float64 {
			sum := 0.0
			for k := lo; k < hi; k++ {
				m := cmplx.Abs(spec[k])
				sum += m * m
			}

			return sum / float64(hi-lo)
		}

		low := band(2048, 4096)
		high := band(4096, 8192)
		got := 10 * math.Log10(high/low)

		if math.Abs(got-tilt) > 0.5 {
			t.Errorf("tilt %v: measured %.2f dB/octave", tilt, got)
		}
	}
}

func TestInvalidLength(t *testing.T) {
	g := New()

	if _, err := g.White(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("White(0): %v", err)
	}

	if _, err := g.Tilted(-5, -2); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Tilted(-5): %v", err)
	}
}
