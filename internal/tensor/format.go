package tensor

import (
	"fmt"
	"strings"
)

// String returns a human-readable dump of the tensor.
//
// Elements are written in row-major order, each followed by ",\t". A newline
// is emitted every time an axis other than the innermost one wraps, so a
// rank-3 tensor prints one line per row with a blank line between channels.
// The output is diagnostic only and not meant to be parsed.
func (t *Tensor[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor[%s]%v\n", t.DType(), t.shape)

	strides := t.shape.ComputeStrides()
	var outer []int
	if len(strides) > 1 {
		outer = strides[:len(strides)-1]
	}

	for i, v := range t.data {
		for _, stride := range outer {
			if i != 0 && i%stride == 0 {
				b.WriteByte('\n')
			}
		}
		fmt.Fprintf(&b, "%v,\t", v)
	}
	b.WriteByte('\n')
	return b.String()
}
