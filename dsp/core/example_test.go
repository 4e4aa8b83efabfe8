package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-voicemorph/dsp/core"
)

func ExampleSmoothstep() {
	// Shape control for a 190 Hz voice between the 80 Hz and 300 Hz anchors.
	rd := core.Smoothstep(190, 80, 300, 0.8, 2.7)
	fmt.Printf("%.2f\n", rd)
	// Output:
	// 1.75
}

func ExampleClamp() {
	fmt.Println(core.Clamp(1.4, 0, 1), core.Clamp(-3, 0, 1))
	// Output:
	// 1 0
}
