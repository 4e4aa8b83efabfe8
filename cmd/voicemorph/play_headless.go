//go:build headless

package main

import "errors"

func play([]float64, int) error {
	return errors.New("built without audio output (headless)")
}
