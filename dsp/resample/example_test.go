package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-voicemorph/dsp/resample"
)

func ExampleResample() {
	in := make([]float64, 4800)
	out, _ := resample.Resample(in, 48000, 16000)
	fmt.Printf("in=%d out=%d\n", len(in), len(out))
	// Output:
	// in=4800 out=1600
}

func ExampleNewForRates() {
	r, _ := resample.NewForRates(44100, 16000, resample.WithQuality(resample.QualityBest))
	up, down := r.Ratio()
	fmt.Printf("ratio=%d/%d\n", up, down)
	// Output:
	// ratio=160/441
}
