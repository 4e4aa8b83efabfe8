package pitch

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/cwbudde/algo-voicemorph/dsp/erb"
)

var (
	// ErrNoTrack is returned when an analysis produced no frames.
	ErrNoTrack = errors.New("pitch: no track")
	// ErrInvalidFrame is returned for frames with a non-finite time or a
	// voiced frame without a positive finite frequency.
	ErrInvalidFrame = errors.New("pitch: invalid frame")
	// ErrUnordered is returned when frame times are not strictly increasing.
	ErrUnordered = errors.New("pitch: frame times not strictly increasing")
)

// Frame is one analysis point of a track.
type Frame struct {
	// Time in seconds.
	Time float64
	// Voiced reports whether the frame carries a fundamental.
	Voiced bool
	// Frequency in Hz. Only meaningful when Voiced.
	Frequency float64
}

// Track is an ordered pitch contour. Frame times are strictly increasing.
type Track struct {
	frames []Frame
}

// NewTrack validates frames and returns a track owning a copy of them.
func NewTrack(frames []Frame) (*Track, error) {
	if len(frames) == 0 {
		return nil, ErrNoTrack
	}

	for i, f := range frames {
		if math.IsNaN(f.Time) || math.IsInf(f.Time, 0) {
			return nil, fmt.Errorf("%w: frame %d time %v", ErrInvalidFrame, i, f.Time)
		}

		if f.Voiced && (!(f.Frequency > 0) || math.IsInf(f.Frequency, 0)) {
			return nil, fmt.Errorf("%w: frame %d voiced at %v Hz", ErrInvalidFrame, i, f.Frequency)
		}

		if i > 0 && f.Time <= frames[i-1].Time {
			return nil, fmt.Errorf("%w: frame %d at %v s after %v s", ErrUnordered, i, f.Time, frames[i-1].Time)
		}
	}

	return &Track{frames: slices.Clone(frames)}, nil
}

// Len returns the number of frames.
func (t *Track) Len() int { return len(t.frames) }

// Frame returns frame i.
func (t *Track) Frame(i int) Frame { return t.frames[i] }

// Frames returns a copy of all frames.
func (t *Track) Frames() []Frame { return slices.Clone(t.frames) }

// Time returns the time of frame i.
func (t *Track) Time(i int) float64 { return t.frames[i].Time }

// Voiced reports whether frame i is voiced.
func (t *Track) Voiced(i int) bool { return t.frames[i].Voiced }

// Frequency returns the frequency of frame i.
func (t *Track) Frequency(i int) float64 { return t.frames[i].Frequency }

// Duration returns the time of the last frame.
func (t *Track) Duration() float64 { return t.frames[len(t.frames)-1].Time }

// IndexBelow returns the last frame at or before time. Times before the
// first frame map to 0.
func (t *Track) IndexBelow(time float64) int {
	// First frame strictly after time.
	i := sort.Search(len(t.frames), func(i int) bool { return t.frames[i].Time > time })
	if i == 0 {
		return 0
	}

	return i - 1
}

// IndexAbove returns the first frame at or after time. Times after the
// last frame map to the last index.
func (t *Track) IndexAbove(time float64) int {
	i := sort.Search(len(t.frames), func(i int) bool { return t.frames[i].Time >= time })
	if i == len(t.frames) {
		return len(t.frames) - 1
	}

	return i
}

// Index returns the frame nearest to time. Ties go to the earlier frame.
func (t *Track) Index(time float64) int {
	below := t.IndexBelow(time)
	above := t.IndexAbove(time)

	if time-t.frames[below].Time <= t.frames[above].Time-time {
		return below
	}

	return above
}

// VoicedRatio returns the fraction of voiced frames.
func (t *Track) VoicedRatio() float64 {
	voiced := 0
	for _, f := range t.frames {
		if f.Voiced {
			voiced++
		}
	}

	return float64(voiced) / float64(len(t.frames))
}

// Morph maps every voiced frequency through the ERB-scale morph with
// exponent m. Unvoiced frames are left untouched; m = 1 is the identity.
func (t *Track) Morph(m float64) {
	if m == 1 {
		return
	}

	for i := range t.frames {
		if t.frames[i].Voiced {
			t.frames[i].Frequency = erb.Morph(t.frames[i].Frequency, m)
		}
	}
}

// Clone returns an independent copy of the track.
func (t *Track) Clone() *Track {
	return &Track{frames: slices.Clone(t.frames)}
}
