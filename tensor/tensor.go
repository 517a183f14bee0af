// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/convlab/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
// Supported types: plain integers (signed and unsigned) and float32/float64.
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// MaxRank is the largest supported number of axes.
const MaxRank = tensor.MaxRank

// Shape represents the dimensions of a tensor.
// Example: MustShape(2, 3, 4) represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic dense tensor of rank 1 to 3.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.MustShape(2, 3))
//	x.Set(1, 0, 2)
type Tensor[T Numeric] = tensor.Tensor[T]

// Errors reported by tensor and convolution operations.
var (
	ErrShape                = tensor.ErrShape
	ErrSizeMismatch         = tensor.ErrSizeMismatch
	ErrOutOfRange           = tensor.ErrOutOfRange
	ErrIncompatibleOperands = tensor.ErrIncompatibleOperands
)

// Shape functions

// NewShape creates a shape from 1 to 3 positive extents.
//
// Example:
//
//	s, err := tensor.NewShape(3, 10, 10)
func NewShape(dims ...int) (Shape, error) {
	return tensor.NewShape(dims...)
}

// MustShape is like NewShape but panics on invalid input.
func MustShape(dims ...int) Shape {
	return tensor.MustShape(dims...)
}

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.MustShape(2, 3))
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.MustShape(2, 3), 3.14)
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Arange creates a tensor counting up from start in row-major order.
//
// Example:
//
//	x := tensor.Arange[int](tensor.MustShape(3, 3, 3), 1)  // 1..27
func Arange[T Numeric](shape Shape, start T) *Tensor[T] {
	return tensor.Arange(shape, start)
}

// FromSlice creates a tensor from a copy of a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.MustShape(2, 3))
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromVector creates a rank-1 tensor from a copy of a Go slice.
func FromVector[T Numeric](data []T) (*Tensor[T], error) {
	return tensor.FromVector(data)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Numeric]() DataType {
	return tensor.DataTypeOf[T]()
}
