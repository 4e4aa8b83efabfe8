// Package pitch holds fundamental-frequency tracks and the analyzers that
// produce them.
//
// A [Track] is a time-ordered list of frames, each voiced with a frequency
// or unvoiced. [YIN] is the built-in analyzer: it resamples the input to
// 16 kHz, removes rumble below 80 Hz and runs the YIN estimator with a
// 5 ms hop, followed by median smoothing and removal of short voiced runs.
package pitch
