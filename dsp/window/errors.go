package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for non-positive window sizes.
	ErrInvalidLength = errors.New("window: size must be > 0")
	// ErrInvalidBeta is returned for a negative Kaiser beta.
	ErrInvalidBeta = errors.New("window: kaiser beta must be >= 0")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	return nil
}
