package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// Conv2DIm2col performs 2D cross-correlation using the im2col algorithm.
//
// Input shape: [C, H, W]
// Filter shape: [C, K_h, K_w] (one tensor per output channel)
// Output shape: [F, H_out, W_out]
//
// Algorithm: Im2col
//  1. Pad the input
//  2. Flatten the filters into a [F, C*K_h*K_w] matrix
//  3. Unroll every receptive field into a column of a [C*K_h*K_w, H_out*W_out] matrix
//  4. Multiply the two matrices
//  5. Reshape the [F, H_out*W_out] product to [F, H_out, W_out]
//
// The result is identical to Conv2DDirect for the same operands.
//
// Reference: "High Performance Convolutional Neural Networks for Document Processing"
// (Chellapilla et al., 2006).
func Conv2DIm2col[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) (*tensor.Tensor[T], error) {
	var out tensor.Tensor[T]
	if err := Conv2DIm2colInto(&out, input, filters, cfg); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conv2DIm2colInto is like Conv2DIm2col but replaces out with the result.
// On error out is left unchanged.
func Conv2DIm2colInto[T tensor.Numeric](out *tensor.Tensor[T], input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) error {
	g, err := checkConv(input, filters, cfg)
	if err != nil {
		return err
	}

	padded, err := Pad(input, cfg.Padding)
	if err != nil {
		return err
	}

	kernelMat, err := FiltersMatrix(filters)
	if err != nil {
		return err
	}

	cols, err := Im2col(padded, g.KH, g.KW, cfg.Stride)
	if err != nil {
		return err
	}

	// [F, C*K_h*K_w] @ [C*K_h*K_w, H_out*W_out] -> [F, H_out*W_out]
	result, err := MatMul(kernelMat, cols)
	if err != nil {
		return errors.WithMessage(err, "conv2d im2col")
	}

	// Row f already holds output channel f in row-major (h, w) order
	if err := result.Reshape(g.outputShape()); err != nil {
		return errors.WithMessage(err, "conv2d im2col")
	}

	*out = *result
	return nil
}

// FiltersMatrix flattens a filter set into a [F, C*K_h*K_w] matrix.
// Row f is filter f in (channel, height, width) order.
func FiltersMatrix[T tensor.Numeric](filters []*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if len(filters) == 0 {
		return nil, errors.Wrap(tensor.ErrIncompatibleOperands, "im2col: filter set is empty")
	}

	rowLen := filters[0].NumElements()
	for i, f := range filters {
		if f.Rank() != 3 {
			return nil, errors.Wrapf(tensor.ErrShape, "im2col: filter %d must be 3D [C,K_h,K_w], got %dD", i, f.Rank())
		}
		if !f.Shape().Equal(filters[0].Shape()) {
			return nil, errors.Wrapf(tensor.ErrIncompatibleOperands,
				"im2col: filter %d has shape %v, filter 0 has %v", i, f.Shape(), filters[0].Shape())
		}
	}

	mat := tensor.Zeros[T](tensor.MustShape(len(filters), rowLen))
	matData := mat.Data()
	for i, f := range filters {
		// A [C, K_h, K_w] buffer is already laid out in (c, kh, kw) order
		copy(matData[i*rowLen:(i+1)*rowLen], f.Data())
	}
	return mat, nil
}

// Im2col unrolls the receptive fields of a [C, H, W] tensor into columns.
//
// Output: [C * K_h * K_w, H_out * W_out] where
//
//	H_out = (H - K_h) / stride[0] + 1
//	W_out = (W - K_w) / stride[1] + 1
//
// Column (outH*W_out + outW) holds the patch read by output position
// (outH, outW); row (c*K_h*K_w + kh*K_w + kw) matches the layout produced by
// FiltersMatrix. The input is expected to be padded already; any position
// that still falls outside it contributes zero.
func Im2col[T tensor.Numeric](input *tensor.Tensor[T], KH, KW int, stride [2]int) (*tensor.Tensor[T], error) {
	if input.Rank() != 3 {
		return nil, errors.Wrapf(tensor.ErrShape, "im2col: input must be 3D [C,H,W], got %dD", input.Rank())
	}
	if stride[0] < 1 || stride[1] < 1 {
		return nil, errors.Wrapf(tensor.ErrShape, "im2col: stride %v must be >= 1", stride)
	}

	C := input.Dim(0)
	H := input.Dim(1)
	W := input.Dim(2)
	if KH < 1 || KW < 1 || KH > H || KW > W {
		return nil, errors.Wrapf(tensor.ErrIncompatibleOperands,
			"im2col: kernel %dx%d does not fit input %dx%d", KH, KW, H, W)
	}

	HOut := (H-KH)/stride[0] + 1
	WOut := (W-KW)/stride[1] + 1
	colHeight := C * KH * KW
	colWidth := HOut * WOut

	cols := tensor.Zeros[T](tensor.MustShape(colHeight, colWidth))
	colBuf := cols.Data()
	inputData := input.Data()

	for outH := 0; outH < HOut; outH++ {
		for outW := 0; outW < WOut; outW++ {
			// Top-left corner in input space
			hStart := outH * stride[0]
			wStart := outW * stride[1]
			col := outH*WOut + outW

			for c := 0; c < C; c++ {
				for kh := 0; kh < KH; kh++ {
					for kw := 0; kw < KW; kw++ {
						row := c*KH*KW + kh*KW + kw
						h := hStart + kh
						w := wStart + kw

						if h >= 0 && h < H && w >= 0 && w < W {
							colBuf[row*colWidth+col] = inputData[c*H*W+h*W+w]
						} else {
							colBuf[row*colWidth+col] = 0
						}
					}
				}
			}
		}
	}

	return cols, nil
}
