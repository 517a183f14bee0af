// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/convlab/internal/backend/cpu"
	"github.com/born-ml/convlab/tensor"
)

// Config controls the stride and zero padding of a convolution.
type Config = internalcpu.Config

// Algorithm selects a convolution implementation.
type Algorithm = internalcpu.Algorithm

// Supported convolution algorithms.
const (
	AlgoDirect = internalcpu.AlgoDirect
	AlgoIm2col = internalcpu.AlgoIm2col
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), internalcpu.Algorithms...)
}

// DefaultConfig returns unit stride and no padding.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// ParseAlgorithm returns the algorithm with the given name ("direct" or "im2col").
func ParseAlgorithm(name string) (Algorithm, error) {
	return internalcpu.ParseAlgorithm(name)
}

// MatMul multiplies a (M, K) tensor by a (K, N) tensor.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.MustShape(2, 2))
//	b, _ := tensor.FromSlice([]int{5, 6, 7, 8}, tensor.MustShape(2, 2))
//	c, err := cpu.MatMul(a, b)  // [[19, 22], [43, 50]]
func MatMul[T tensor.Numeric](a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return internalcpu.MatMul(a, b)
}

// Pad adds a zero border around the spatial axes of a [C, H, W] tensor.
func Pad[T tensor.Numeric](input *tensor.Tensor[T], padding [2]int) (*tensor.Tensor[T], error) {
	return internalcpu.Pad(input, padding)
}

// Conv2D runs a convolution with the selected algorithm.
func Conv2D[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config, algo Algorithm) (*tensor.Tensor[T], error) {
	return internalcpu.Conv2D(input, filters, cfg, algo)
}

// Conv2DDirect runs the nested-loop convolution.
func Conv2DDirect[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) (*tensor.Tensor[T], error) {
	return internalcpu.Conv2DDirect(input, filters, cfg)
}

// Conv2DDirectInto runs the nested-loop convolution and stores the result in out.
func Conv2DDirectInto[T tensor.Numeric](out, input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) error {
	return internalcpu.Conv2DDirectInto(out, input, filters, cfg)
}

// Conv2DIm2col runs the im2col convolution.
func Conv2DIm2col[T tensor.Numeric](input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) (*tensor.Tensor[T], error) {
	return internalcpu.Conv2DIm2col(input, filters, cfg)
}

// Conv2DIm2colInto runs the im2col convolution and stores the result in out.
func Conv2DIm2colInto[T tensor.Numeric](out, input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg Config) error {
	return internalcpu.Conv2DIm2colInto(out, input, filters, cfg)
}
