//go:build !headless

package main

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"
)

// play blocks until samples have been played on the default device.
func play(samples []float64, sampleRate int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(float32LE(samples)))
	defer player.Close()

	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return player.Err()
}
