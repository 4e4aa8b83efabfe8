package formant

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
)

func TestDesign_StableCascade(t *testing.T) {
	for _, fs := range []float64{16000, 44100, 48000} {
		for _, m := range []float64{0.05, 0.7, 1, 1.3, 2} {
			sos, err := Design(fs, m)
			if err != nil {
				t.Fatalf("fs=%v m=%v: %v", fs, m, err)
			}

			chain := biquad.NewChain(sos)
			if !chain.Stable() {
				t.Fatalf("fs=%v m=%v: unstable cascade", fs, m)
			}
		}
	}
}

func TestDesign_ResonancesAtTableFrequencies(t *testing.T) {
	fs := 48000.0

	sos, err := Design(fs, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(sos) != len(Poles) {
		t.Fatalf("sections = %d, want %d", len(sos), len(Poles))
	}

	chain := biquad.NewChain(sos)

	// The 250 Hz pole is much sharper than its neighbourhood.
	peak := chain.MagnitudeDB(250, fs)
	if off := chain.MagnitudeDB(600, fs); peak-off < 20 {
		t.Fatalf("250 Hz peak %.1f dB vs 600 Hz %.1f dB", peak, off)
	}

	// The 400 Hz zero is a notch.
	if notch := chain.MagnitudeDB(400, fs); notch > chain.MagnitudeDB(330, fs) {
		t.Fatalf("no notch at 400 Hz: %.1f dB", notch)
	}
}

func TestDesign_DropsPolesAboveNyquist(t *testing.T) {
	// At 8 kHz the 4400 Hz pole is above Nyquist.
	sos, err := Design(8000, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(sos) != len(Poles)-1 {
		t.Fatalf("sections = %d, want %d", len(sos), len(Poles)-1)
	}
}

func TestRoot_MorphMovesOnlyMorphable(t *testing.T) {
	fs := 48000.0

	fixed, _ := Poles[0].Root(fs, 1.5)
	ref, _ := Poles[0].Root(fs, 1)
	if fixed != ref {
		t.Fatalf("fixed pole moved: %v -> %v", ref, fixed)
	}

	lo, _ := Poles[1].Root(fs, 1)
	hi, _ := Poles[1].Root(fs, 1.2)
	if cmplx.Phase(hi) <= cmplx.Phase(lo) {
		t.Fatalf("morph 1.2 did not raise the 1200 Hz pole: %v -> %v", lo, hi)
	}

	want := math.Exp(-math.Pi * 80 / fs)
	if got := cmplx.Abs(lo); math.Abs(got-want) > 1e-12 {
		t.Fatalf("radius = %v, want %v", got, want)
	}
}

func TestBandwidthMorph(t *testing.T) {
	if got := BandwidthMorph(1); got != 1 {
		t.Fatalf("BandwidthMorph(1) = %v", got)
	}

	if got := BandwidthMorph(1.5); math.Abs(got-1.6) > 1e-12 {
		t.Fatalf("BandwidthMorph(1.5) = %v, want 1.6", got)
	}

	if got := BandwidthMorph(0.01); got != minBandwidthMorph {
		t.Fatalf("BandwidthMorph(0.01) = %v, want floor", got)
	}
}

func TestDesign_InvalidArguments(t *testing.T) {
	if _, err := Design(0, 1); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("fs=0: %v", err)
	}

	if _, err := Design(48000, math.NaN()); !errors.Is(err, ErrInvalidMorph) {
		t.Fatalf("morph=NaN: %v", err)
	}

	if _, err := Design(48000, -1); !errors.Is(err, ErrInvalidMorph) {
		t.Fatalf("morph=-1: %v", err)
	}
}
