package pitch

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-voicemorph/dsp/erb"
)

func testTrack(t *testing.T) *Track {
	t.Helper()

	tr, err := NewTrack([]Frame{
		{Time: 0.00},
		{Time: 0.01, Voiced: true, Frequency: 100},
		{Time: 0.02, Voiced: true, Frequency: 120},
		{Time: 0.03},
	})
	if err != nil {
		t.Fatal(err)
	}

	return tr
}

func TestNewTrack_Validation(t *testing.T) {
	tests := []struct {
		name   string
		frames []Frame
		want   error
	}{
		{"empty", nil, ErrNoTrack},
		{"nan time", []Frame{{Time: math.NaN()}}, ErrInvalidFrame},
		{"voiced zero", []Frame{{Time: 0, Voiced: true}}, ErrInvalidFrame},
		{"voiced inf", []Frame{{Time: 0, Voiced: true, Frequency: math.Inf(1)}}, ErrInvalidFrame},
		{"equal times", []Frame{{Time: 0}, {Time: 0}}, ErrUnordered},
		{"decreasing", []Frame{{Time: 1}, {Time: 0.5}}, ErrUnordered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTrack(tt.frames); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewTrack_CopiesInput(t *testing.T) {
	frames := []Frame{{Time: 0, Voiced: true, Frequency: 100}}

	tr, err := NewTrack(frames)
	if err != nil {
		t.Fatal(err)
	}

	frames[0].Frequency = 999

	if tr.Frequency(0) != 100 {
		t.Fatalf("track aliases caller slice: %v", tr.Frequency(0))
	}
}

func TestTrack_IndexLookups(t *testing.T) {
	tr := testTrack(t)

	tests := []struct {
		time               float64
		below, above, near int
	}{
		{-1, 0, 0, 0},
		{0, 0, 0, 0},
		{0.004, 0, 1, 0},
		{0.006, 0, 1, 1},
		{0.01, 1, 1, 1},
		{0.024, 2, 3, 2},
		{0.03, 3, 3, 3},
		{5, 3, 3, 3},
	}

	for _, tt := range tests {
		if got := tr.IndexBelow(tt.time); got != tt.below {
			t.Errorf("IndexBelow(%v) = %d, want %d", tt.time, got, tt.below)
		}

		if got := tr.IndexAbove(tt.time); got != tt.above {
			t.Errorf("IndexAbove(%v) = %d, want %d", tt.time, got, tt.above)
		}

		if got := tr.Index(tt.time); got != tt.near {
			t.Errorf("Index(%v) = %d, want %d", tt.time, got, tt.near)
		}
	}
}

func TestTrack_MorphIdentity(t *testing.T) {
	tr := testTrack(t)
	before := tr.Frames()

	tr.Morph(1)

	for i, f := range tr.Frames() {
		if f != before[i] {
			t.Fatalf("frame %d changed: %+v -> %+v", i, before[i], f)
		}
	}
}

func TestTrack_MorphVoicedOnly(t *testing.T) {
	tr := testTrack(t)
	tr.Morph(1.3)

	if tr.Frequency(0) != 0 || tr.Frequency(3) != 0 {
		t.Fatal("unvoiced frames changed")
	}

	if want := erb.Morph(100, 1.3); tr.Frequency(1) != want {
		t.Fatalf("frame 1 = %v, want %v", tr.Frequency(1), want)
	}

	if tr.Frequency(2) <= tr.Frequency(1) {
		t.Fatal("morph is not monotone")
	}
}

func TestTrack_CloneIsIndependent(t *testing.T) {
	tr := testTrack(t)
	c := tr.Clone()
	c.Morph(2)

	if tr.Frequency(1) != 100 {
		t.Fatalf("original changed to %v", tr.Frequency(1))
	}
}

func TestTrack_Summary(t *testing.T) {
	tr := testTrack(t)

	if tr.Len() != 4 || tr.Duration() != 0.03 {
		t.Fatalf("len=%d duration=%v", tr.Len(), tr.Duration())
	}

	if tr.VoicedRatio() != 0.5 {
		t.Fatalf("voiced ratio = %v", tr.VoicedRatio())
	}

	if !tr.Voiced(1) || tr.Voiced(0) || tr.Time(2) != 0.02 {
		t.Fatal("accessors disagree with frames")
	}
}

func TestAnalyzerFunc(t *testing.T) {
	called := false

	var a Analyzer = AnalyzerFunc(func(samples []float64, fs float64) (*Track, error) {
		called = true
		return NewTrack([]Frame{{Time: 0}})
	})

	tr, err := a.Analyze(nil, 16000)
	if err != nil || !called || tr.Len() != 1 {
		t.Fatalf("tr=%v err=%v called=%v", tr, err, called)
	}
}
