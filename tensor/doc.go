// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-rank dense tensors for the convlab convolution engine.
//
// # Overview
//
// Tensors are the data structure every convlab operation consumes and
// produces. This package provides:
//   - Generic type-safe tensors (Tensor[T]) over plain integers and floats
//   - Shapes of rank 1 to 3, immutable once built
//   - Row-major storage with the last axis varying fastest
//   - Exact structural equality and a diagnostic text dump
//
// # Basic Usage
//
//	import "github.com/born-ml/convlab/tensor"
//
//	func main() {
//	    // [channels, height, width]
//	    x := tensor.Arange[int](tensor.MustShape(3, 10, 10), 0)
//
//	    y, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.MustShape(2, 2))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.At(1, 2, 3), y.At(1, 0))
//	}
//
// # Supported Data Types
//
// The Numeric constraint admits int, int8..int64, uint, uint8..uint64,
// float32 and float64, including named types built on them.
//
// # Ownership
//
// A tensor exclusively owns its buffer. Constructors copy their input and
// every transform allocates a new tensor. Data returns the live buffer for
// bulk reads and writes; Fit and FitWith replace the tensor wholesale, after
// which previously returned slices no longer alias it.
//
// # Errors
//
// Constructors and Reshape return errors wrapping ErrShape, ErrSizeMismatch,
// ErrOutOfRange or ErrIncompatibleOperands; match them with errors.Is.
// Element access with a wrong index count or an out-of-range index panics.
package tensor
