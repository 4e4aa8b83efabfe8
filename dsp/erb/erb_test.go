package erb

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 50, 120, 440, 1000, 3500, 8000} {
		got := ERBToHz(HzToERB(f))
		if math.Abs(got-f) > 1e-9*math.Max(1, f) {
			t.Fatalf("ERBToHz(HzToERB(%v)) = %v", f, got)
		}
	}
}

func TestMorphIdentity(t *testing.T) {
	for _, f := range []float64{0, 80, 120.5, 300, 4400} {
		if got := Morph(f, 1); got != f {
			t.Fatalf("Morph(%v, 1) = %v, want exact identity", f, got)
		}
	}
}

func TestMorphMatchesERBScaling(t *testing.T) {
	for _, m := range []float64{0.8, 1.1, 1.5} {
		for _, f := range []float64{100, 250, 1200} {
			want := ERBToHz(m * HzToERB(f))
			got := Morph(f, m)

			if math.Abs(got-want) > 1e-9*want {
				t.Fatalf("Morph(%v, %v) = %v, want %v", f, m, got, want)
			}
		}
	}
}

func TestMorphDirection(t *testing.T) {
	if Morph(200, 1.2) <= 200 {
		t.Fatal("m > 1 should raise the frequency")
	}

	if Morph(200, 0.8) >= 200 {
		t.Fatal("m < 1 should lower the frequency")
	}

	if Morph(0, 1.7) != 0 {
		t.Fatal("0 Hz should stay fixed")
	}
}
