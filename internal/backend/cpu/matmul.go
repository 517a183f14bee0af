package cpu

import (
	"github.com/pkg/errors"

	"github.com/born-ml/convlab/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
//
// Shapes are validated before the result is allocated, so a failed call
// never produces a partial tensor.
func MatMul[T tensor.Numeric](a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, errors.Wrapf(tensor.ErrShape, "matmul: only 2D tensors supported, got %dD and %dD", a.Rank(), b.Rank())
	}

	m, k := a.Dim(0), a.Dim(1)
	kAlt, n := b.Dim(0), b.Dim(1)

	if k != kAlt {
		return nil, errors.Wrapf(tensor.ErrIncompatibleOperands, "matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result := tensor.Zeros[T](tensor.MustShape(m, n))
	matmul(result.Data(), a.Data(), b.Data(), m, k, n)
	return result, nil
}

// matmul performs naive matrix multiplication.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmul[T tensor.Numeric](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
