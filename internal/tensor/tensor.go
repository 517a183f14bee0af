package tensor

import "fmt"

// Tensor is a dense row-major array of T tagged with a Shape.
//
// A Tensor exclusively owns its backing buffer: constructors copy their
// input and every transform returns a freshly allocated tensor. The zero
// value is an empty tensor (rank 0, no data) that can later be sized with
// Fit.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.MustShape(3, 4))
//	t.Set(1.5, 1, 2)
//	value := t.At(1, 2)
type Tensor[T Numeric] struct {
	shape Shape
	data  []T
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Dim returns the extent of axis i.
// Panics with ErrOutOfRange if i is not a valid axis.
func (t *Tensor[T]) Dim(i int) int {
	return t.shape.Dim(i)
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the backing buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
// The slice is invalidated by Fit and FitWith.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if the index count does not match the rank or an index is out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	offset, err := t.shape.Offset(indices...)
	if err != nil {
		panic(err)
	}
	return t.data[offset]
}

// Set sets the element at the given indices.
// Panics if the index count does not match the rank or an index is out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	offset, err := t.shape.Offset(indices...)
	if err != nil {
		panic(err)
	}
	t.data[offset] = value
}

// Reshape reinterprets the buffer with a new shape of equal element count.
// The data is not moved.
func (t *Tensor[T]) Reshape(shape Shape) error {
	if shape.NumElements() != t.shape.NumElements() {
		return fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrSizeMismatch, t.shape, t.shape.NumElements(), shape, shape.NumElements())
	}
	t.shape = shape
	return nil
}

// Fit replaces the tensor with a fresh zero-filled tensor of the given shape.
// Slices previously returned by Data no longer alias the tensor.
func (t *Tensor[T]) Fit(shape Shape) {
	*t = *Zeros[T](shape)
}

// FitWith replaces the tensor with a fresh tensor holding a copy of data.
// On error the tensor is left unchanged.
func (t *Tensor[T]) FitWith(shape Shape, data []T) error {
	fresh, err := FromSlice(data, shape)
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}

// Equal reports whether both tensors have the same shape and identical elements.
// Floating point values are compared exactly.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		shape: t.shape,
		data:  data,
	}
}
