package pitch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voicemorph/dsp/filter/biquad"
	"github.com/cwbudde/algo-voicemorph/dsp/filter/design/pass"
	"github.com/cwbudde/algo-voicemorph/dsp/resample"
)

// Analysis defaults.
const (
	DefaultAnalysisRate = 16000.0
	DefaultHop          = 0.005
	DefaultMinFrequency = 40.0
	DefaultMaxFrequency = 500.0
	DefaultThreshold    = 0.15
	DefaultHighpass     = 80.0
	DefaultEnergyGateDB = -40.0
	DefaultMedianLength = 5
	DefaultMinVoicedRun = 3
)

var (
	// ErrEmptyInput is returned when there are no samples to analyze.
	ErrEmptyInput = errors.New("pitch: empty input")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("pitch: invalid sample rate")
	// ErrInvalidConfig is returned when the analyzer options are inconsistent.
	ErrInvalidConfig = errors.New("pitch: invalid analyzer configuration")
)

type yinConfig struct {
	analysisRate float64
	hop          float64
	minFreq      float64
	maxFreq      float64
	threshold    float64
	highpass     float64
	gateDB       float64
	medianLength int
	minVoicedRun int
}

func defaultYINConfig() yinConfig {
	return yinConfig{
		analysisRate: DefaultAnalysisRate,
		hop:          DefaultHop,
		minFreq:      DefaultMinFrequency,
		maxFreq:      DefaultMaxFrequency,
		threshold:    DefaultThreshold,
		highpass:     DefaultHighpass,
		gateDB:       DefaultEnergyGateDB,
		medianLength: DefaultMedianLength,
		minVoicedRun: DefaultMinVoicedRun,
	}
}

// YINOption configures a YIN analyzer.
type YINOption func(*yinConfig)

// WithAnalysisRate sets the internal analysis sample rate.
func WithAnalysisRate(hz float64) YINOption {
	return func(c *yinConfig) {
		if hz > 0 && !math.IsInf(hz, 0) {
			c.analysisRate = hz
		}
	}
}

// WithHop sets the frame spacing in seconds.
func WithHop(seconds float64) YINOption {
	return func(c *yinConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			c.hop = seconds
		}
	}
}

// WithFrequencyRange sets the search range of the fundamental in Hz.
func WithFrequencyRange(lo, hi float64) YINOption {
	return func(c *yinConfig) {
		c.minFreq = lo
		c.maxFreq = hi
	}
}

// WithThreshold sets the absolute threshold on the cumulative mean
// normalized difference. Lower values are stricter about voicing.
func WithThreshold(th float64) YINOption {
	return func(c *yinConfig) {
		if th > 0 {
			c.threshold = th
		}
	}
}

// WithHighpass sets the pre-filter cutoff in Hz. Zero disables it.
func WithHighpass(hz float64) YINOption {
	return func(c *yinConfig) {
		if hz >= 0 {
			c.highpass = hz
		}
	}
}

// WithEnergyGate sets the frame level, in dB relative to the loudest
// frame, below which frames are unvoiced.
func WithEnergyGate(db float64) YINOption {
	return func(c *yinConfig) {
		if db <= 0 {
			c.gateDB = db
		}
	}
}

// WithMedianLength sets the length of the median smoother over voiced
// frequencies. Values below 2 disable it.
func WithMedianLength(n int) YINOption {
	return func(c *yinConfig) {
		c.medianLength = n
	}
}

// WithMinVoicedRun sets the shortest voiced run, in frames, that survives
// post-processing.
func WithMinVoicedRun(n int) YINOption {
	return func(c *yinConfig) {
		c.minVoicedRun = n
	}
}

// YIN estimates the fundamental with the YIN algorithm (de Cheveigné and
// Kawahara, 2002). The difference function is computed through an FFT
// cross term. A YIN value is safe for concurrent use.
type YIN struct {
	cfg yinConfig
}

// NewYIN returns a YIN analyzer.
func NewYIN(opts ...YINOption) (*YIN, error) {
	cfg := defaultYINConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(cfg.minFreq > 0) || !(cfg.maxFreq > cfg.minFreq) || cfg.maxFreq >= cfg.analysisRate/2 {
		return nil, fmt.Errorf("%w: range %v..%v Hz at %v Hz", ErrInvalidConfig, cfg.minFreq, cfg.maxFreq, cfg.analysisRate)
	}

	if cfg.highpass >= cfg.analysisRate/2 {
		return nil, fmt.Errorf("%w: highpass %v Hz", ErrInvalidConfig, cfg.highpass)
	}

	return &YIN{cfg: cfg}, nil
}

// Analyze implements [Analyzer].
func (y *YIN) Analyze(samples []float64, sampleRate float64) (*Track, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	x, err := y.condition(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	fs := y.cfg.analysisRate
	minLag := int(math.Floor(fs / y.cfg.maxFreq))
	maxLag := int(math.Ceil(fs / y.cfg.minFreq))
	hop := y.cfg.hop * fs

	est, err := newDifferenceEstimator(maxLag, maxLag)
	if err != nil {
		return nil, err
	}

	numFrames := int(float64(len(x)-1)/hop) + 1
	frames := make([]Frame, numFrames)
	levels := make([]float64, numFrames)
	span := est.window + est.maxLag
	buf := make([]float64, span)

	for k := range frames {
		center := int(math.Round(float64(k) * hop))
		extract(buf, x, center-span/2)

		levels[k] = rms(buf[:est.window])
		frames[k].Time = float64(k) * y.cfg.hop

		if levels[k] == 0 {
			continue
		}

		if err := est.compute(buf); err != nil {
			return nil, err
		}

		if lag, ok := est.pick(minLag, y.cfg.threshold); ok {
			f := fs / lag
			if f >= y.cfg.minFreq && f <= y.cfg.maxFreq {
				frames[k].Voiced = true
				frames[k].Frequency = f
			}
		}
	}

	gate(frames, levels, y.cfg.gateDB)
	dropShortRuns(frames, y.cfg.minVoicedRun)
	medianSmooth(frames, y.cfg.medianLength)

	return NewTrack(frames)
}

// condition brings the input to the analysis rate and removes rumble.
func (y *YIN) condition(samples []float64, sampleRate float64) ([]float64, error) {
	var x []float64

	if sampleRate == y.cfg.analysisRate {
		x = make([]float64, len(samples))
		copy(x, samples)
	} else {
		var err error

		x, err = resample.Resample(samples, sampleRate, y.cfg.analysisRate)
		if err != nil {
			return nil, fmt.Errorf("pitch: resample %v -> %v Hz: %w", sampleRate, y.cfg.analysisRate, err)
		}

		if len(x) == 0 {
			return nil, ErrEmptyInput
		}
	}

	if y.cfg.highpass > 0 {
		biquad.NewChain(pass.ButterworthHP(y.cfg.highpass, 2, y.cfg.analysisRate)).ProcessBlock(x)
	}

	return x, nil
}

// extract copies x[start:start+len(dst)] into dst, zero outside x.
func extract(dst, x []float64, start int) {
	for i := range dst {
		j := start + i
		if j >= 0 && j < len(x) {
			dst[i] = x[j]
		} else {
			dst[i] = 0
		}
	}
}

func rms(x []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// differenceEstimator evaluates the YIN difference function
//
//	d(tau) = sum_{j<W} (x[j] - x[j+tau])^2 = e(0) + e(tau) - 2 r(tau)
//
// with the cross term r(tau) from one forward and one inverse FFT.
type differenceEstimator struct {
	window int
	maxLag int

	plan *algofft.Plan[complex128]
	a    []complex128
	b    []complex128
	fa   []complex128
	fb   []complex128

	energy []float64
	diff   []float64
	cmnd   []float64
}

func newDifferenceEstimator(window, maxLag int) (*differenceEstimator, error) {
	n := nextPowerOf2(window + maxLag + 1)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	return &differenceEstimator{
		window: window,
		maxLag: maxLag,
		plan:   plan,
		a:      make([]complex128, n),
		b:      make([]complex128, n),
		fa:     make([]complex128, n),
		fb:     make([]complex128, n),
		energy: make([]float64, window+maxLag+1),
		diff:   make([]float64, maxLag+1),
		cmnd:   make([]float64, maxLag+1),
	}, nil
}

// compute fills diff and cmnd for buf, which holds window+maxLag samples.
func (e *differenceEstimator) compute(buf []float64) error {
	for i := range e.a {
		e.a[i] = 0
		e.b[i] = 0
	}

	for i, v := range buf {
		e.b[i] = complex(v, 0)
		if i < e.window {
			e.a[i] = complex(v, 0)
		}
	}

	if err := e.plan.Forward(e.fa, e.a); err != nil {
		return fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	if err := e.plan.Forward(e.fb, e.b); err != nil {
		return fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	for i := range e.fa {
		e.fa[i] = complex(real(e.fa[i]), -imag(e.fa[i])) * e.fb[i]
	}

	if err := e.plan.Inverse(e.a, e.fa); err != nil {
		return fmt.Errorf("pitch: inverse FFT failed: %w", err)
	}

	// energy[i] = sum of squares of buf[:i]
	e.energy[0] = 0
	for i, v := range buf {
		e.energy[i+1] = e.energy[i] + v*v
	}

	e0 := e.energy[e.window]
	for tau := 0; tau <= e.maxLag; tau++ {
		et := e.energy[tau+e.window] - e.energy[tau]
		d := e0 + et - 2*real(e.a[tau])
		if d < 0 {
			d = 0
		}

		e.diff[tau] = d
	}

	e.cmnd[0] = 1
	running := 0.0

	for tau := 1; tau <= e.maxLag; tau++ {
		running += e.diff[tau]
		if running == 0 {
			e.cmnd[tau] = 1
			continue
		}

		e.cmnd[tau] = e.diff[tau] * float64(tau) / running
	}

	return nil
}

// pick returns the refined lag of the first dip below threshold.
func (e *differenceEstimator) pick(minLag int, threshold float64) (float64, bool) {
	if minLag < 1 {
		minLag = 1
	}

	for tau := minLag; tau < e.maxLag; tau++ {
		if e.cmnd[tau] >= threshold {
			continue
		}

		for tau+1 < e.maxLag && e.cmnd[tau+1] < e.cmnd[tau] {
			tau++
		}

		return parabolicPeak(e.cmnd, tau), true
	}

	return 0, false
}

// parabolicPeak refines the extremum at index i of y with a parabola
// through its neighbours.
func parabolicPeak(y []float64, i int) float64 {
	if i <= 0 || i >= len(y)-1 {
		return float64(i)
	}

	den := y[i-1] - 2*y[i] + y[i+1]
	if den == 0 {
		return float64(i)
	}

	shift := 0.5 * (y[i-1] - y[i+1]) / den
	if math.Abs(shift) > 1 {
		return float64(i)
	}

	return float64(i) + shift
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
