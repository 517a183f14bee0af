package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// convGeometry holds the validated sizes of one convolution.
type convGeometry struct {
	C    int // input channels
	F    int // number of filters (output channels)
	KH   int // filter height
	KW   int // filter width
	HOut int // output height
	WOut int // output width
}

func (g convGeometry) outputShape() tensor.Shape {
	return tensor.MustShape(g.F, g.HOut, g.WOut)
}

// checkConv validates the operands of a convolution and computes its geometry.
//
// Input shape: [C, H, W]
// Filter shape: [C, K_h, K_w], identical for every filter
// Output shape: [F, H_out, W_out]
func checkConv[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) (convGeometry, error) {
	if err := cfg.Validate(); err != nil {
		return convGeometry{}, errors.WithMessage(err, "conv2d")
	}
	if input.Rank() != 3 {
		return convGeometry{}, errors.Wrapf(tensor.ErrShape, "conv2d: input must be 3D [C,H,W], got %dD", input.Rank())
	}
	if len(filters) == 0 {
		return convGeometry{}, errors.Wrap(tensor.ErrIncompatibleOperands, "conv2d: filter set is empty")
	}

	C := input.Dim(0)
	H := input.Dim(1)
	W := input.Dim(2)

	for i, f := range filters {
		if f.Rank() != 3 {
			return convGeometry{}, errors.Wrapf(tensor.ErrShape, "conv2d: filter %d must be 3D [C,K_h,K_w], got %dD", i, f.Rank())
		}
		if f.Dim(0) != C {
			return convGeometry{}, errors.Wrapf(tensor.ErrIncompatibleOperands,
				"conv2d: filter %d has %d channels, input has %d", i, f.Dim(0), C)
		}
		if f.Dim(1) != filters[0].Dim(1) || f.Dim(2) != filters[0].Dim(2) {
			return convGeometry{}, errors.Wrapf(tensor.ErrIncompatibleOperands,
				"conv2d: filter %d is %dx%d, filter 0 is %dx%d", i, f.Dim(1), f.Dim(2), filters[0].Dim(1), filters[0].Dim(2))
		}
	}

	KH := filters[0].Dim(1)
	KW := filters[0].Dim(2)
	if KH > H || KW > W {
		return convGeometry{}, errors.Wrapf(tensor.ErrIncompatibleOperands,
			"conv2d: filter %dx%d larger than input %dx%d", KH, KW, H, W)
	}

	// out_h = (H + 2*padding - KH) / stride + 1
	// out_w = (W + 2*padding - KW) / stride + 1
	return convGeometry{
		C:    C,
		F:    len(filters),
		KH:   KH,
		KW:   KW,
		HOut: (H+2*cfg.Padding[0]-KH)/cfg.Stride[0] + 1,
		WOut: (W+2*cfg.Padding[1]-KW)/cfg.Stride[1] + 1,
	}, nil
}

// Conv2DDirect performs 2D cross-correlation with a nested loop over every
// filter, output position, channel and filter offset.
//
// Input shape: [C, H, W]
// Filter shape: [C, K_h, K_w] (one tensor per output channel)
// Output shape: [F, H_out, W_out]
//
// The kernel is not flipped.
func Conv2DDirect[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) (*tensor.Tensor[T], error) {
	var out tensor.Tensor[T]
	if err := Conv2DDirectInto(&out, input, filters, cfg); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conv2DDirectInto is like Conv2DDirect but writes the result into out.
//
// out is refitted to a fresh zero tensor of the output shape before
// accumulation, so previous contents never leak into the result. On error
// out is left unchanged.
func Conv2DDirectInto[T tensor.Numeric](out *tensor.Tensor[T], input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) error {
	g, err := checkConv(input, filters, cfg)
	if err != nil {
		return err
	}

	padded, err := Pad(input, cfg.Padding)
	if err != nil {
		return err
	}

	out.Fit(g.outputShape())

	inputData := padded.Data()
	outputData := out.Data()
	HPad := padded.Dim(1)
	WPad := padded.Dim(2)
	sH, sW := cfg.Stride[0], cfg.Stride[1]

	for f := 0; f < g.F; f++ {
		kernelData := filters[f].Data()
		for outH := 0; outH < g.HOut; outH++ {
			for outW := 0; outW < g.WOut; outW++ {
				dstIdx := f*g.HOut*g.WOut + outH*g.WOut + outW
				for c := 0; c < g.C; c++ {
					for kh := 0; kh < g.KH; kh++ {
						for kw := 0; kw < g.KW; kw++ {
							h := sH*outH + kh
							w := sW*outW + kw
							outputData[dstIdx] += kernelData[c*g.KH*g.KW+kh*g.KW+kw] * inputData[c*HPad*WPad+h*WPad+w]
						}
					}
				}
			}
		}
	}

	return nil
}
