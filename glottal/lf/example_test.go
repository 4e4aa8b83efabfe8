package lf_test

import (
	"fmt"

	"github.com/cwbudde/algo-voicemorph/glottal/lf"
)

func ExampleSolve() {
	s, err := lf.Solve(1.0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Tp=%.3f Te=%.3f Ta=%.3f\n", s.Tp, s.Te, s.Ta)
	fmt.Printf("value at Te: %.3f\n", s.Value(s.Te))
	// Output:
	// Tp=0.484 Te=0.650 Ta=0.038
	// value at Te: -1.000
}

func ExampleBoundary() {
	g, _ := lf.NewGenerator(1.0, 4)

	for range 5 {
		_, pre := g.GenerateFrame()
		fmt.Println(lf.Boundary(pre))
	}
	// Output:
	// MidCycle
	// MidCycle
	// MidCycle
	// BoundaryCrossed
	// MidCycle
}
