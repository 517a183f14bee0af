package cpu

import (
	"math/rand"

	"github.com/born-ml/convlab/internal/fixture"
	"github.com/born-ml/convlab/internal/tensor"
)

var referenceOutput = fixture.Reference

func fixtureInput[T tensor.Numeric]() *tensor.Tensor[T] {
	return fixture.Input[T]()
}

func fixtureFilters[T tensor.Numeric]() []*tensor.Tensor[T] {
	return fixture.Filters[T]()
}

// naiveConv is a textbook cross-correlation that handles padding through
// bounds checks on the unpadded input instead of materializing a padded copy.
func naiveConv[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) *tensor.Tensor[T] {
	C, H, W := input.Dim(0), input.Dim(1), input.Dim(2)
	KH, KW := filters[0].Dim(1), filters[0].Dim(2)
	HOut := (H+2*cfg.Padding[0]-KH)/cfg.Stride[0] + 1
	WOut := (W+2*cfg.Padding[1]-KW)/cfg.Stride[1] + 1

	out := tensor.Zeros[T](tensor.MustShape(len(filters), HOut, WOut))
	for f, filter := range filters {
		for oh := 0; oh < HOut; oh++ {
			for ow := 0; ow < WOut; ow++ {
				var sum T
				for c := 0; c < C; c++ {
					for kh := 0; kh < KH; kh++ {
						for kw := 0; kw < KW; kw++ {
							h := oh*cfg.Stride[0] + kh - cfg.Padding[0]
							w := ow*cfg.Stride[1] + kw - cfg.Padding[1]
							if h < 0 || h >= H || w < 0 || w >= W {
								continue
							}
							sum += filter.At(c, kh, kw) * input.At(c, h, w)
						}
					}
				}
				out.Set(sum, f, oh, ow)
			}
		}
	}
	return out
}

// randomTensor fills a tensor with small integers in [-4, 4] so that float
// sums stay exact and comparisons can be bitwise.
func randomTensor[T tensor.Numeric](rng *rand.Rand, dims ...int) *tensor.Tensor[T] {
	t := tensor.Zeros[T](tensor.MustShape(dims...))
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Intn(9)) - 4
	}
	return t
}
