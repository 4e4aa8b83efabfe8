package pitch

// Analyzer extracts a pitch track from mono samples.
type Analyzer interface {
	Analyze(samples []float64, sampleRate float64) (*Track, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(samples []float64, sampleRate float64) (*Track, error)

// Analyze calls f.
func (f AnalyzerFunc) Analyze(samples []float64, sampleRate float64) (*Track, error) {
	return f(samples, sampleRate)
}
