package pitch

import "testing"

func voicing(frames []Frame) string {
	b := make([]byte, len(frames))
	for i, f := range frames {
		b[i] = '.'
		if f.Voiced {
			b[i] = 'v'
		}
	}

	return string(b)
}

func framesFrom(pattern string, freq float64) []Frame {
	frames := make([]Frame, len(pattern))
	for i, c := range pattern {
		frames[i].Time = float64(i) * DefaultHop
		if c == 'v' {
			frames[i].Voiced = true
			frames[i].Frequency = freq
		}
	}

	return frames
}

func TestDropShortRuns(t *testing.T) {
	tests := []struct {
		in, want string
		minRun   int
	}{
		{"v.vv.vvv.", ".....vvv.", 3},
		{"vv", "..", 3},
		{"vvv", "vvv", 3},
		{"v.v", "v.v", 1},
		{".vv.vvvv", ".vv.vvvv", 2},
	}

	for _, tt := range tests {
		frames := framesFrom(tt.in, 100)
		dropShortRuns(frames, tt.minRun)

		if got := voicing(frames); got != tt.want {
			t.Errorf("dropShortRuns(%q, %d) = %q, want %q", tt.in, tt.minRun, got, tt.want)
		}

		for i, f := range frames {
			if !f.Voiced && f.Frequency != 0 {
				t.Errorf("%q: unvoiced frame %d kept %v Hz", tt.in, i, f.Frequency)
			}
		}
	}
}

func TestMedianSmooth_RemovesOctaveSpike(t *testing.T) {
	frames := framesFrom("vvvvvvv", 110)
	frames[3].Frequency = 220

	medianSmooth(frames, 5)

	for i, f := range frames {
		if f.Frequency != 110 {
			t.Fatalf("frame %d = %v Hz, want 110", i, f.Frequency)
		}
	}
}

func TestMedianSmooth_IgnoresUnvoicedNeighbours(t *testing.T) {
	frames := framesFrom("..vvv..", 150)
	medianSmooth(frames, 5)

	if voicing(frames) != "..vvv.." {
		t.Fatalf("voicing changed: %s", voicing(frames))
	}

	for _, i := range []int{2, 3, 4} {
		if frames[i].Frequency != 150 {
			t.Fatalf("frame %d = %v", i, frames[i].Frequency)
		}
	}
}

func TestMedianSmooth_Disabled(t *testing.T) {
	frames := framesFrom("vvv", 100)
	frames[1].Frequency = 300

	medianSmooth(frames, 1)

	if frames[1].Frequency != 300 {
		t.Fatal("length 1 smoothed")
	}
}

func TestGate(t *testing.T) {
	frames := framesFrom("vvvv", 100)
	gate(frames, []float64{1, 0.5, 0.009, 0}, -40)

	if got := voicing(frames); got != "vv.." {
		t.Fatalf("gate = %q, want vv..", got)
	}

	frames = framesFrom("vv", 100)
	gate(frames, []float64{0, 0}, -40)

	if got := voicing(frames); got != ".." {
		t.Fatalf("all-silent gate = %q", got)
	}
}
