package lf

import (
	"errors"
	"math"
	"testing"
)

func TestNewGenerator_Validation(t *testing.T) {
	if _, err := NewGenerator(1, 0); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("period 0: %v", err)
	}

	if _, err := NewGenerator(-1, 100); !errors.Is(err, ErrInvalidRd) {
		t.Fatalf("rd -1: %v", err)
	}

	g, err := NewGenerator(1, 100)
	if err != nil {
		t.Fatal(err)
	}

	if g.Phase() != 0 || g.Period() != 100 || g.Shape().Rd != 1 {
		t.Fatalf("phase=%v period=%v rd=%v", g.Phase(), g.Period(), g.Shape().Rd)
	}
}

func TestGenerateFrame_OneBoundaryPerPeriod(t *testing.T) {
	g, _ := NewGenerator(1, 80)

	crossings := 0
	for i := range 800 {
		_, pre := g.GenerateFrame()
		if Boundary(pre) == BoundaryCrossed {
			crossings++

			if g.Phase() >= 1 || g.Phase() < 0 {
				t.Fatalf("sample %d: phase %v not wrapped", i, g.Phase())
			}
		}
	}

	// Floating-point accumulation may land the last crossing on either
	// side of sample 800.
	if crossings < 9 || crossings > 10 {
		t.Fatalf("crossings = %d, want 9 or 10", crossings)
	}
}

func TestGenerateFrame_MatchesShapeValue(t *testing.T) {
	g, _ := NewGenerator(0.8, 97.5)
	s := g.Shape()

	for range 300 {
		y, _ := g.GenerateFrame()
		if want := s.Value(g.Phase()); math.Abs(y-want) > 1e-12 {
			t.Fatalf("phase %v: sample %v, want %v", g.Phase(), y, want)
		}
	}
}

func TestSetPeriod_MidCycleKeepsPhase(t *testing.T) {
	g, _ := NewGenerator(1, 100)
	for range 30 {
		g.GenerateFrame()
	}

	before := g.Phase()
	if err := g.SetPeriod(50); err != nil {
		t.Fatal(err)
	}

	if g.Phase() != before {
		t.Fatalf("SetPeriod moved the phase: %v -> %v", before, g.Phase())
	}

	_, pre := g.GenerateFrame()
	if math.Abs(pre-(before+1.0/50)) > 1e-15 {
		t.Fatalf("next step %v, want %v", pre-before, 1.0/50)
	}

	for _, p := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if err := g.SetPeriod(p); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("SetPeriod(%v): %v", p, err)
		}
	}

	if g.Period() != 50 {
		t.Fatalf("rejected period changed state: %v", g.Period())
	}
}

func TestSetShape_ErrorKeepsPreviousShape(t *testing.T) {
	g, _ := NewGenerator(1.2, 100)
	old := g.Shape()

	if err := g.SetShape(0.1); !errors.Is(err, ErrSolverDivergence) {
		t.Fatalf("SetShape(0.1): %v", err)
	}

	if g.Shape() != old {
		t.Fatal("failed SetShape replaced the shape")
	}

	if err := g.SetShape(2); err != nil {
		t.Fatal(err)
	}

	if g.Shape().Rd != 2 {
		t.Fatalf("Rd = %v, want 2", g.Shape().Rd)
	}
}

func TestGenerateFrame_ShortPeriodWraps(t *testing.T) {
	g, _ := NewGenerator(1, 0.4)

	_, pre := g.GenerateFrame()
	if Boundary(pre) != BoundaryCrossed {
		t.Fatalf("pre-phase %v should cross", pre)
	}

	if p := g.Phase(); p < 0 || p >= 1 || math.Abs(p-0.5) > 1e-12 {
		t.Fatalf("phase = %v, want 0.5", p)
	}
}

func TestCycleString(t *testing.T) {
	if MidCycle.String() != "MidCycle" || BoundaryCrossed.String() != "BoundaryCrossed" {
		t.Fatal("unexpected Cycle names")
	}

	if Cycle(7).String() != "Cycle(7)" {
		t.Fatalf("got %q", Cycle(7).String())
	}
}

func BenchmarkGenerateFrame(b *testing.B) {
	g, _ := NewGenerator(1, 480)

	var sum float64
	for b.Loop() {
		y, _ := g.GenerateFrame()
		sum += y
	}

	_ = sum
}

func BenchmarkSolve(b *testing.B) {
	for b.Loop() {
		_, _ = Solve(1.3)
	}
}
