// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/matrix"
)

func TestTranspose_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6})

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	AssertAllClose(t, got, want, 0)

	got, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	AssertAllClose(t, got, want, 0)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Known(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	got, err := matrix.Mul(a, hide{b})
	require.NoError(t, err)
	AssertAllClose(t, got, NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154}), 0)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCholesky_Known2x2(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{4, 2, 2, 3})
	L, err := matrix.Cholesky(a)
	require.NoError(t, err)
	AssertAllClose(t, L, NewFilledDense(t, 2, 2, []float64{2, 0, 1, math.Sqrt2}), 1e-15)
}

func TestCholesky_Reconstruction(t *testing.T) {
	t.Parallel()

	// Gram matrix of the A3 Coxeter diagram: 1 on the diagonal, cos(π/3) between neighbours.
	a := NewFilledDense(t, 3, 3, []float64{
		1, 0.5, 0,
		0.5, 1, 0.5,
		0, 0.5, 1,
	})
	L, err := matrix.Cholesky(hide{a})
	require.NoError(t, err)

	// Strictly lower triangular part only.
	var i, j int
	var v float64
	for i = 0; i < 3; i++ {
		for j = i + 1; j < 3; j++ {
			v, _ = L.At(i, j)
			assert.Zero(t, v, "L[%d,%d]", i, j)
		}
	}

	Lt, err := matrix.Transpose(L)
	require.NoError(t, err)
	back, err := matrix.Mul(L, Lt)
	require.NoError(t, err)
	AssertAllClose(t, back, a, 1e-12)
}

func TestCholesky_Rejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"asymmetric", NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.4, 1}), matrix.ErrAsymmetry},
		{"indefinite", NewFilledDense(t, 2, 2, []float64{1, 2, 2, 1}), matrix.ErrNotPositiveDefinite},
		{"singular", NewFilledDense(t, 2, 2, []float64{1, 1, 1, 1}), matrix.ErrNotPositiveDefinite},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Cholesky(tc.m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	// Leading zero forces a row swap.
	m := NewFilledDense(t, 3, 3, []float64{
		0, 2, 1,
		1, 0, 0,
		3, 1, 2,
	})
	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, det, 1e-12)

	det, err = matrix.Determinant(NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4}))
	require.NoError(t, err)
	assert.Zero(t, det)

	det, err = matrix.Determinant(hide{NewFilledDense(t, 1, 1, []float64{-5})})
	require.NoError(t, err)
	assert.Equal(t, -5.0, det)

	_, err = matrix.Determinant(MustDense(t, 2, 1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMinor(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	got, err := matrix.Minor(m, 1, 0)
	require.NoError(t, err)
	AssertAllClose(t, got, NewFilledDense(t, 2, 2, []float64{2, 3, 8, 9}), 0)

	_, err = matrix.Minor(m, 3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(NewFilledDense(t, 1, 1, []float64{1}), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestCofactor_AdjugateIdentity(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		2, -1, 0,
		1, 3, 1,
		0, 1, 4,
	})
	C, err := matrix.Cofactor(m)
	require.NoError(t, err)
	det, err := matrix.Determinant(m)
	require.NoError(t, err)

	// m * Cᵀ = det(m) * I
	Ct, err := matrix.Transpose(C)
	require.NoError(t, err)
	prod, err := matrix.Mul(m, Ct)
	require.NoError(t, err)
	want := NewFilledDense(t, 3, 3, []float64{det, 0, 0, 0, det, 0, 0, 0, det})
	AssertAllClose(t, prod, want, 1e-9)

	one, err := matrix.Cofactor(NewFilledDense(t, 1, 1, []float64{7}))
	require.NoError(t, err)
	AssertAllClose(t, one, NewFilledDense(t, 1, 1, []float64{1}), 0)
}
