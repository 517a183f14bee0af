// Package cpu implements the convolution engine on CPU: dense matrix multiply,
// zero padding, direct convolution and im2col convolution.
//
// Every operation is synchronous, allocates its result and never aliases its
// operands. Invalid operands are reported as errors wrapping the sentinels of
// the tensor package.
package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// Algorithm selects a convolution implementation.
type Algorithm int

// Supported convolution algorithms.
const (
	AlgoDirect Algorithm = iota
	AlgoIm2col
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{AlgoDirect, AlgoIm2col}

// String returns a human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoDirect:
		return "direct"
	case AlgoIm2col:
		return "im2col"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown convolution algorithm %q", name)
}

// Conv2D runs the convolution with the selected algorithm.
func Conv2D[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config, algo Algorithm) (*tensor.Tensor[T], error) {
	switch algo {
	case AlgoDirect:
		return Conv2DDirect(input, filters, cfg)
	case AlgoIm2col:
		return Conv2DIm2col(input, filters, cfg)
	default:
		return nil, errors.Errorf("conv2d: unsupported algorithm %s", algo)
	}
}
