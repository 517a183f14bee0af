package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// Config controls the sliding window of a convolution.
// Index 0 applies to the height axis, index 1 to the width axis.
type Config struct {
	Stride  [2]int // Step of the window, >= 1.
	Padding [2]int // Zero border added on each side, >= 0.
}

// DefaultConfig returns unit stride and no padding.
func DefaultConfig() Config {
	return Config{
		Stride:  [2]int{1, 1},
		Padding: [2]int{0, 0},
	}
}

// WithStride returns a copy of c with the given stride.
func (c Config) WithStride(h, w int) Config {
	c.Stride = [2]int{h, w}
	return c
}

// WithPadding returns a copy of c with the given padding.
func (c Config) WithPadding(h, w int) Config {
	c.Padding = [2]int{h, w}
	return c
}

// Validate checks stride and padding bounds.
func (c Config) Validate() error {
	if c.Stride[0] < 1 || c.Stride[1] < 1 {
		return errors.Wrapf(tensor.ErrShape, "stride %v must be >= 1", c.Stride)
	}
	if c.Padding[0] < 0 || c.Padding[1] < 0 {
		return errors.Wrapf(tensor.ErrShape, "padding %v must be >= 0", c.Padding)
	}
	return nil
}
