package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/convlab/internal/tensor"
)

// TestMatMul_2x2 tests the hand-computed 2x2 product.
func TestMatMul_2x2(t *testing.T) {
	a, err := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.MustShape(2, 2))
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int{5, 6, 7, 8}, tensor.MustShape(2, 2))
	require.NoError(t, err)

	c, err := MatMul(a, b)
	require.NoError(t, err)

	// [[1,2],[3,4]] @ [[5,6],[7,8]] = [[19,22],[43,50]]
	assert.True(t, c.Shape().Equal(tensor.MustShape(2, 2)))
	assert.Equal(t, []int{19, 22, 43, 50}, c.Data())
}

// TestMatMul_NonSquare tests (2, 3) @ (3, 2).
func TestMatMul_NonSquare(t *testing.T) {
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.MustShape(2, 3))
	b, _ := tensor.FromSlice([]float32{7, 8, 9, 10, 11, 12}, tensor.MustShape(3, 2))

	c, err := MatMul(a, b)
	require.NoError(t, err)

	// Row 0: [1*7+2*9+3*11, 1*8+2*10+3*12] = [58, 64]
	// Row 1: [4*7+5*9+6*11, 4*8+5*10+6*12] = [139, 154]
	assert.True(t, c.Shape().Equal(tensor.MustShape(2, 2)))
	assert.Equal(t, []float32{58, 64, 139, 154}, c.Data())
}

// TestMatMul_Vector tests a row vector times a column vector.
func TestMatMul_Vector(t *testing.T) {
	a := tensor.Arange[int64](tensor.MustShape(1, 4), 1)
	b := tensor.Arange[int64](tensor.MustShape(4, 1), 1)

	c, err := MatMul(a, b)
	require.NoError(t, err)
	assert.True(t, c.Shape().Equal(tensor.MustShape(1, 1)))
	assert.Equal(t, int64(30), c.At(0, 0))
}

func TestMatMul_OperandsUnchanged(t *testing.T) {
	a := tensor.Arange[int](tensor.MustShape(2, 3), 0)
	b := tensor.Arange[int](tensor.MustShape(3, 2), 0)
	aCopy, bCopy := a.Clone(), b.Clone()

	_, err := MatMul(a, b)
	require.NoError(t, err)
	assert.True(t, a.Equal(aCopy))
	assert.True(t, b.Equal(bCopy))
}

func TestMatMul_Errors(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *tensor.Tensor[int]
		wantErr error
	}{
		{
			name:    "inner mismatch",
			a:       tensor.Zeros[int](tensor.MustShape(2, 3)),
			b:       tensor.Zeros[int](tensor.MustShape(2, 3)),
			wantErr: tensor.ErrIncompatibleOperands,
		},
		{
			name:    "rank 1 lhs",
			a:       tensor.Zeros[int](tensor.MustShape(3)),
			b:       tensor.Zeros[int](tensor.MustShape(3, 2)),
			wantErr: tensor.ErrShape,
		},
		{
			name:    "rank 3 rhs",
			a:       tensor.Zeros[int](tensor.MustShape(2, 3)),
			b:       tensor.Zeros[int](tensor.MustShape(3, 2, 1)),
			wantErr: tensor.ErrShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := MatMul(tt.a, tt.b)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestMatMul_AgainstGonum compares float64 results with gonum's dense multiply.
func TestMatMul_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, dims := range [][3]int{{1, 1, 1}, {3, 5, 2}, {8, 27, 64}, {17, 4, 9}} {
		m, k, n := dims[0], dims[1], dims[2]

		aData := make([]float64, m*k)
		bData := make([]float64, k*n)
		for i := range aData {
			aData[i] = rng.NormFloat64()
		}
		for i := range bData {
			bData[i] = rng.NormFloat64()
		}

		a, err := tensor.FromSlice(aData, tensor.MustShape(m, k))
		require.NoError(t, err)
		b, err := tensor.FromSlice(bData, tensor.MustShape(k, n))
		require.NoError(t, err)

		got, err := MatMul(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(mat.NewDense(m, k, aData), mat.NewDense(k, n, bData))

		assert.InDeltaSlice(t, want.RawMatrix().Data, got.Data(), 1e-9, "dims %v", dims)
	}
}
