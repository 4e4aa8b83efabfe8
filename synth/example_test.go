package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-voicemorph/pitch"
	"github.com/cwbudde/algo-voicemorph/synth"
)

func ExampleOutputLength() {
	fmt.Println(synth.OutputLength(16000, 16000, 44100))
	// Output:
	// 44100
}

func ExampleFromTrack() {
	track, err := pitch.NewTrack([]pitch.Frame{
		{Time: 0, Voiced: true, Frequency: 120},
		{Time: 0.25, Voiced: true, Frequency: 180},
	})
	if err != nil {
		panic(err)
	}

	out, err := synth.FromTrack(track, 12000, synth.WithSampleRate(24000), synth.WithPitchMorph(1.1))
	if err != nil {
		panic(err)
	}

	fmt.Println(len(out))
	// Output:
	// 12000
}
