package main

import (
	"encoding/binary"
	"math"
)

// float32LE packs samples as little-endian float32, the format the audio
// device is opened with.
func float32LE(samples []float64) []byte {
	out := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(v)))
	}

	return out
}
