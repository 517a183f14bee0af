package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// Pad adds a zero border around the spatial axes of a [C, H, W] tensor.
//
// The result has shape [C, H+2*padding[0], W+2*padding[1]] with the input
// copied into the centered region. With zero padding the result is a copy
// of the input; it never shares the input's buffer.
func Pad[T tensor.Numeric](input *tensor.Tensor[T], padding [2]int) (*tensor.Tensor[T], error) {
	if input.Rank() != 3 {
		return nil, errors.Wrapf(tensor.ErrShape, "pad: input must be 3D [C,H,W], got %dD", input.Rank())
	}
	if padding[0] < 0 || padding[1] < 0 {
		return nil, errors.Wrapf(tensor.ErrShape, "pad: padding %v must be >= 0", padding)
	}

	if padding == [2]int{0, 0} {
		return input.Clone(), nil
	}

	C := input.Dim(0)
	H := input.Dim(1)
	W := input.Dim(2)
	HPad := H + 2*padding[0]
	WPad := W + 2*padding[1]

	output := tensor.Zeros[T](tensor.MustShape(C, HPad, WPad))
	src := input.Data()
	dst := output.Data()

	// Copy row by row into the centered window
	for c := 0; c < C; c++ {
		for h := 0; h < H; h++ {
			srcIdx := c*H*W + h*W
			dstIdx := c*HPad*WPad + (h+padding[0])*WPad + padding[1]
			copy(dst[dstIdx:dstIdx+W], src[srcIdx:srcIdx+W])
		}
	}

	return output, nil
}
