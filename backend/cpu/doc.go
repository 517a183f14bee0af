// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go convolution engine.
//
// # Overview
//
// This package implements:
//   - Dense matrix multiply for rank-2 tensors
//   - Zero padding of [C, H, W] tensors
//   - Direct nested-loop 2D convolution
//   - Im2col 2D convolution (patch unrolling + one matrix multiply)
//
// Both convolutions compute cross-correlation (no kernel flip) of a
// [C, H, W] input with F filters of shape [C, K_h, K_w] and return a
// [F, H_out, W_out] tensor where
//
//	H_out = (H + 2*padding[0] - K_h) / stride[0] + 1
//	W_out = (W + 2*padding[1] - K_w) / stride[1] + 1
//
// The two algorithms return identical tensors for identical operands.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/convlab/backend/cpu"
//	    "github.com/born-ml/convlab/tensor"
//	)
//
//	func main() {
//	    input := tensor.Arange[int](tensor.MustShape(3, 10, 10), 0)
//	    filters := []*tensor.Tensor[int]{
//	        tensor.Arange[int](tensor.MustShape(3, 3, 3), 0),
//	        tensor.Arange[int](tensor.MustShape(3, 3, 3), 1),
//	    }
//
//	    cfg := cpu.DefaultConfig().WithStride(2, 2).WithPadding(2, 2)
//	    out, err := cpu.Conv2DIm2col(input, filters, cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(out)
//	}
//
// # Thread Safety
//
// Operations are synchronous and share no mutable state. Each call reads its
// operands and allocates its result, so distinct calls may run concurrently
// as long as nobody writes to the operands meanwhile.
package cpu
