// Package resample provides one-shot rational sample-rate conversion with a
// Kaiser-windowed polyphase FIR.
//
// The converter compensates the filter's group delay, so output sample m
// lines up with input time m*down/up. The output length is
// round(len(input)*up/down).
//
// Default quality/performance matrix:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
package resample
