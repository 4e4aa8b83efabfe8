package lf

import (
	"errors"
	"math"
	"testing"
)

func TestNewton_Sqrt2(t *testing.T) {
	fn := RootFunc{
		F:  func(x float64) float64 { return x*x - 2 },
		DF: func(x float64) float64 { return 2 * x },
	}

	got, err := Newton(fn, 1)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-math.Sqrt2) > 1e-14 {
		t.Fatalf("root = %.17g, want sqrt(2)", got)
	}
}

func TestNewton_Failures(t *testing.T) {
	tests := []struct {
		name string
		fn   RootFunc
		x0   float64
		opts []NewtonOption
		want error
	}{
		{
			name: "flat derivative",
			fn: RootFunc{
				F:  func(float64) float64 { return 1 },
				DF: func(float64) float64 { return 0 },
			},
			x0:   3,
			want: ErrDerivativeUnderflow,
		},
		{
			name: "nan derivative",
			fn: RootFunc{
				F:  func(x float64) float64 { return x },
				DF: func(float64) float64 { return math.NaN() },
			},
			x0:   3,
			want: ErrDerivativeUnderflow,
		},
		{
			name: "non-finite step",
			fn: RootFunc{
				F:  func(float64) float64 { return math.MaxFloat64 },
				DF: func(float64) float64 { return 1e-300 },
			},
			x0:   0,
			want: ErrNonFiniteIterate,
		},
		{
			name: "budget",
			fn: RootFunc{
				F:  func(x float64) float64 { return x*x - 2 },
				DF: func(x float64) float64 { return 2 * x },
			},
			x0:   1000,
			opts: []NewtonOption{WithMaxIterations(2)},
			want: ErrMaxIterations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Newton(tt.fn, tt.x0, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			if !errors.Is(err, ErrSolverDivergence) {
				t.Fatalf("err = %v does not wrap ErrSolverDivergence", err)
			}
		})
	}
}

func TestNewton_LowerBoundIsRespected(t *testing.T) {
	var seen []float64

	fn := RootFunc{
		F: func(x float64) float64 {
			seen = append(seen, x)
			return x + 1
		},
		DF: func(float64) float64 { return 1 },
	}

	_, err := Newton(fn, 1, WithLowerBound(0), WithMaxIterations(20))
	if !errors.Is(err, ErrMaxIterations) {
		t.Fatalf("err = %v, want ErrMaxIterations", err)
	}

	for i, x := range seen {
		if x <= 0 {
			t.Fatalf("iterate %d = %v crossed the bound", i, x)
		}
	}

	if seen[1] != 0.5 {
		t.Fatalf("first bounded step = %v, want 0.5", seen[1])
	}
}

func TestNewton_Tolerance(t *testing.T) {
	calls := 0
	fn := RootFunc{
		F: func(x float64) float64 {
			calls++
			return x*x - 2
		},
		DF: func(x float64) float64 { return 2 * x },
	}

	loose, err := Newton(fn, 1, WithTolerance(1e-2))
	if err != nil {
		t.Fatal(err)
	}

	looseCalls := calls
	calls = 0

	if _, err := Newton(fn, 1); err != nil {
		t.Fatal(err)
	}

	if looseCalls >= calls {
		t.Fatalf("loose tolerance used %d calls, tight %d", looseCalls, calls)
	}

	if math.Abs(loose-math.Sqrt2) > 1e-2 {
		t.Fatalf("loose root %v too far from sqrt(2)", loose)
	}
}
