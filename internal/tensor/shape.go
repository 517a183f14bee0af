package tensor

import (
	"fmt"
	"strings"
)

// MaxRank is the largest supported number of axes.
const MaxRank = 3

// Shape represents the dimensions of a tensor.
//
// A Shape holds between 1 and MaxRank positive extents. It is a value type:
// once built it never changes, it is only ever replaced. The zero value is
// the empty shape (rank 0, no elements) carried by an empty tensor.
type Shape struct {
	dims [MaxRank]int
	rank int
}

// NewShape creates a shape from 1 to 3 positive extents.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 || len(dims) > MaxRank {
		return Shape{}, fmt.Errorf("%w: rank %d not in [1, %d]", ErrShape, len(dims), MaxRank)
	}
	var s Shape
	for i, dim := range dims {
		if dim <= 0 {
			return Shape{}, fmt.Errorf("%w: invalid dimension at index %d: %d (must be > 0)", ErrShape, i, dim)
		}
		s.dims[i] = dim
	}
	s.rank = len(dims)
	return s, nil
}

// MustShape is like NewShape but panics on invalid input.
// Intended for literal shapes.
func MustShape(dims ...int) Shape {
	s, err := NewShape(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return s.rank
}

// Dim returns the extent of axis i.
// Panics with ErrOutOfRange if i is not a valid axis.
func (s Shape) Dim(i int) int {
	if i < 0 || i >= s.rank {
		panic(fmt.Errorf("%w: axis %d for rank %d", ErrOutOfRange, i, s.rank))
	}
	return s.dims[i]
}

// Dims returns a copy of the extents.
func (s Shape) Dims() []int {
	dims := make([]int, s.rank)
	copy(dims, s.dims[:s.rank])
	return dims
}

// NumElements returns the total number of elements.
// The empty shape has no elements.
func (s Shape) NumElements() int {
	if s.rank == 0 {
		return 0
	}
	n := 1
	for _, dim := range s.dims[:s.rank] {
		n *= dim
	}
	return n
}

// IsEmpty reports whether s is the empty shape.
func (s Shape) IsEmpty() bool {
	return s.rank == 0
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, s.rank)
	if s.rank == 0 {
		return strides
	}

	strides[s.rank-1] = 1
	for i := s.rank - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s.dims[i+1]
	}
	return strides
}

// Offset maps indices to a position in the row-major buffer.
//
//	rank 1: w
//	rank 2: h*W + w
//	rank 3: c*H*W + h*W + w
//
// The number of indices must match the rank and every index must lie within
// its extent.
func (s Shape) Offset(indices ...int) (int, error) {
	if s.rank == 0 {
		return 0, fmt.Errorf("%w: cannot index an empty shape", ErrShape)
	}
	if len(indices) != s.rank {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrShape, s.rank, len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= s.dims[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)", ErrOutOfRange, idx, i, s.dims[i])
		}
	}

	switch s.rank {
	case 1:
		return indices[0], nil
	case 2:
		return indices[0]*s.dims[1] + indices[1], nil
	default:
		return indices[0]*s.dims[1]*s.dims[2] + indices[1]*s.dims[2] + indices[2], nil
	}
}

// String renders the shape as (d0, d1, d2).
func (s Shape) String() string {
	parts := make([]string, s.rank)
	for i, dim := range s.dims[:s.rank] {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
