// Command voicemorph resynthesizes the voice in a WAV file with a
// morphed pitch contour and formant filter.
//
// Usage:
//
//	voicemorph [flags] input.wav
//
// The pitch of the input is tracked, optionally scaled on the ERB axis,
// and used to drive an LF glottal source. The result is written as a mono
// WAV file.
//
// Examples:
//
//	voicemorph -o out.wav speech.wav
//	voicemorph -pitch 1.3 -filter 0.9 -rate 44100 -o high.wav speech.wav
//	voicemorph -play -v speech.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-voicemorph/dsp/noise"
	"github.com/cwbudde/algo-voicemorph/internal/wavio"
	"github.com/cwbudde/algo-voicemorph/pitch"
	"github.com/cwbudde/algo-voicemorph/synth"
)

type options struct {
	input       string
	output      string
	rate        int
	pitchMorph  float64
	filterMorph float64
	loPitch     float64
	hiPitch     float64
	method      string
	bits        int
	dither      bool
	seed        int64
	play        bool
	verbose     bool
}

func main() {
	var o options

	flag.StringVar(&o.output, "o", "", "output WAV path (default: <input>-morph.wav)")
	flag.IntVar(&o.rate, "rate", int(synth.DefaultSampleRate), "output sample rate in Hz")
	flag.Float64Var(&o.pitchMorph, "pitch", 1, "ERB-scale pitch morph exponent (1 keeps the pitch)")
	flag.Float64Var(&o.filterMorph, "filter", 1, "ERB-scale formant morph exponent (1 keeps the formants)")
	flag.Float64Var(&o.loPitch, "lo", synth.DefaultLoPitch, "pitch in Hz mapped to the pressed voice quality")
	flag.Float64Var(&o.hiPitch, "hi", synth.DefaultHiPitch, "pitch in Hz mapped to the lax voice quality")
	flag.StringVar(&o.method, "method", synth.MethodLF.String(), "excitation model (lf)")
	flag.IntVar(&o.bits, "bits", 16, "output bit depth (16, 24, 32)")
	flag.BoolVar(&o.dither, "dither", true, "apply TPDF dither when quantizing")
	flag.Int64Var(&o.seed, "seed", 1, "noise floor seed")
	flag.BoolVar(&o.play, "play", false, "play the result")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: voicemorph [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Resynthesizes a voice from its pitch contour.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  voicemorph -o out.wav speech.wav\n")
		fmt.Fprintf(os.Stderr, "  voicemorph -pitch 1.3 -filter 0.9 -rate 44100 -o high.wav speech.wav\n")
		fmt.Fprintf(os.Stderr, "  voicemorph -play -v speech.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	o.input = flag.Arg(0)
	if o.output == "" {
		o.output = defaultOutput(o.input)
	}

	if err := run(o, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-morph.wav"
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(o options, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, o.verbose)

	features := cpu.DetectFeatures()
	logger.Debug("cpu", "arch", features.Architecture, "simd", simdLevel(features))

	method, err := synth.ParseMethod(o.method)
	if err != nil {
		return err
	}

	in, err := wavio.ReadFile(o.input)
	if err != nil {
		return err
	}

	logger.Info("input", "path", o.input, "rate", in.SampleRate, "channels", in.Channels,
		"bits", in.BitDepth, "seconds", in.Duration())

	yin, err := pitch.NewYIN()
	if err != nil {
		return err
	}

	track, err := yin.Analyze(in.Samples, float64(in.SampleRate))
	if err != nil {
		return fmt.Errorf("pitch analysis: %w", err)
	}

	n := synth.OutputLength(len(in.Samples), float64(in.SampleRate), float64(o.rate))
	if n == 0 {
		return errors.New("input too short for output rate")
	}

	bar := newProgressBar(stderr)

	out, stats, err := synth.FromTrackStats(track, n,
		synth.WithSampleRate(float64(o.rate)),
		synth.WithPitchMorph(o.pitchMorph),
		synth.WithFilterMorph(o.filterMorph),
		synth.WithPitchRange(o.loPitch, o.hiPitch),
		synth.WithMethod(method),
		synth.WithNoiseSource(noise.New(noise.WithSeed(o.seed))),
		synth.WithLogger(logger),
		synth.WithProgress(bar.update),
	)
	bar.finish()

	if err != nil {
		return err
	}

	err = wavio.WriteFile(o.output, out, o.rate,
		wavio.WithBitDepth(o.bits),
		wavio.WithDither(o.dither),
	)
	if err != nil {
		return err
	}

	printSummary(stdout, o, track, stats, len(out))

	if o.play {
		logger.Debug("playback", "samples", len(out), "rate", o.rate)

		if err := play(out, o.rate); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}

	return nil
}

func printSummary(w io.Writer, o options, track *pitch.Track, stats synth.Stats, n int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Output\t%s\n", o.output)
	fmt.Fprintf(tw, "Samples\t%d @ %d Hz\n", n, o.rate)
	fmt.Fprintf(tw, "Pitch morph\t%.3f\n", o.pitchMorph)
	fmt.Fprintf(tw, "Filter morph\t%.3f\n", o.filterMorph)
	fmt.Fprintf(tw, "Track frames\t%d\n", track.Len())
	fmt.Fprintf(tw, "Voiced\t%.1f%%\n", 100*stats.VoicedRatio)
	fmt.Fprintf(tw, "Peak (pre-normalize)\t%.4g\n", stats.Peak)
	fmt.Fprintf(tw, "Non-finite samples\t%d\n", stats.NonFinite)
	tw.Flush()
}

// simdLevel returns the widest SIMD level the features support.
func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, level := range []cpu.SIMDLevel{cpu.SIMDAVX512, cpu.SIMDAVX2, cpu.SIMDAVX, cpu.SIMDSSE2, cpu.SIMDNEON} {
		if cpu.Supports(f, level) {
			return level
		}
	}

	return cpu.SIMDNone
}
