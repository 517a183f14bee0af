package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.MustShape(3, 4))
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		data:  make([]T, shape.NumElements()),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSizeMismatch, shape, shape.NumElements(), len(data))
	}

	t := Zeros[T](shape)
	copy(t.data, data)
	return t, nil
}

// FromVector creates a rank-1 tensor holding a copy of data.
func FromVector[T Numeric](data []T) (*Tensor[T], error) {
	shape, err := NewShape(len(data))
	if err != nil {
		return nil, err
	}
	return FromSlice(data, shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](tensor.MustShape(3, 3), 3.14)
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Arange creates a tensor whose elements count up from start in row-major order.
//
// Example:
//
//	t := tensor.Arange[int](tensor.MustShape(3, 10, 10), 0) // 0..299
func Arange[T Numeric](shape Shape, start T) *Tensor[T] {
	t := Zeros[T](shape)
	v := start
	for i := range t.data {
		t.data[i] = v
		v++
	}
	return t
}
