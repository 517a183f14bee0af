// Package fixture holds the reference convolution scenario shared by the
// tests and the convlab driver.
package fixture

import "github.com/born-ml/convlab/internal/tensor"

// Reference is the expected result of convolving Input with Filters at unit
// stride and no padding, shape [2, 8, 8].
var Reference = []int{
	55719, 56070, 56421, 56772, 57123, 57474, 57825, 58176,
	59229, 59580, 59931, 60282, 60633, 60984, 61335, 61686,
	62739, 63090, 63441, 63792, 64143, 64494, 64845, 65196,
	66249, 66600, 66951, 67302, 67653, 68004, 68355, 68706,
	69759, 70110, 70461, 70812, 71163, 71514, 71865, 72216,
	73269, 73620, 73971, 74322, 74673, 75024, 75375, 75726,
	76779, 77130, 77481, 77832, 78183, 78534, 78885, 79236,
	80289, 80640, 80991, 81342, 81693, 82044, 82395, 82746,

	58716, 59094, 59472, 59850, 60228, 60606, 60984, 61362,
	62496, 62874, 63252, 63630, 64008, 64386, 64764, 65142,
	66276, 66654, 67032, 67410, 67788, 68166, 68544, 68922,
	70056, 70434, 70812, 71190, 71568, 71946, 72324, 72702,
	73836, 74214, 74592, 74970, 75348, 75726, 76104, 76482,
	77616, 77994, 78372, 78750, 79128, 79506, 79884, 80262,
	81396, 81774, 82152, 82530, 82908, 83286, 83664, 84042,
	85176, 85554, 85932, 86310, 86688, 87066, 87444, 87822,
}

// Input returns a [3, 10, 10] tensor filled with 0..299.
func Input[T tensor.Numeric]() *tensor.Tensor[T] {
	return tensor.Arange[T](tensor.MustShape(3, 10, 10), 0)
}

// Filters returns two [3, 3, 3] filters filled with 0..26 and 1..27.
func Filters[T tensor.Numeric]() []*tensor.Tensor[T] {
	return []*tensor.Tensor[T]{
		tensor.Arange[T](tensor.MustShape(3, 3, 3), 0),
		tensor.Arange[T](tensor.MustShape(3, 3, 3), 1),
	}
}

// ReferenceShape is the shape of Reference.
func ReferenceShape() tensor.Shape {
	return tensor.MustShape(2, 8, 8)
}

// ReferenceOutput returns Reference as a tensor of T.
func ReferenceOutput[T tensor.Numeric]() *tensor.Tensor[T] {
	out := tensor.Zeros[T](ReferenceShape())
	data := out.Data()
	for i, v := range Reference {
		data[i] = T(v)
	}
	return out
}
