// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, multiplication, matrix-vector product, Cholesky factorization,
// determinant, minors and cofactors. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh *Dense result.
//   - Non-*Dense inputs are materialized once through denseOf, so the hot
//     loops always walk a flat row-major slice.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly zero pivot in elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose   = "Transpose"
	opMul         = "Mul"
	opCholesky    = "Cholesky"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns m itself when it is a *Dense, otherwise a *Dense copy built
// through the interface accessors.
// Complexity: O(1) on the fast path, O(r*c) otherwise.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Transpose returns a new matrix that is the transpose of m.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: copy data[i*cols+j] into res.data[j*rows+i].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul computes the matrix product a*b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation into a fresh Dense(a.Rows, b.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n, inner, p := ad.r, ad.c, bd.c
	res, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik float64
	for i = 0; i < n; i++ {
		for k = 0; k < inner; k++ {
			aik = ad.data[i*inner+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < p; j++ {
				res.data[i*p+j] += aik * bd.data[k*p+j]
			}
		}
	}

	return res, nil
}

// Cholesky computes the lower-triangular factor L with A = L*Lᵀ.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, DefaultEpsilon).
//   - Stage 2: Cholesky–Banachiewicz, row by row: for j<i
//     L[i,j] = (A[i,j] - Σ_k<j L[i,k]L[j,k]) / L[j,j], then
//     L[i,i] = sqrt(A[i,i] - Σ_k<i L[i,k]²).
//
// Behavior highlights:
//   - A diagonal pivot ≤ DefaultPivotTolerance aborts with ErrNotPositiveDefinite,
//     so singular (semi-definite) inputs are rejected along with indefinite ones.
//   - Rows of L are vectors whose pairwise dot products reproduce A; the
//     columns of Lᵀ are therefore the same vectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Determinism:
//   - Fixed i→j→k order; identical inputs give bit-identical factors.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			if i == j {
				pivot = a.data[i*n+i] - sum
				if !(pivot > DefaultPivotTolerance) { // also catches NaN
					return nil, matrixErrorf(opCholesky,
						fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrNotPositiveDefinite))
				}
				L.data[i*n+i] = math.Sqrt(pivot)
				continue
			}
			L.data[i*n+j] = (a.data[i*n+j] - sum) / L.data[j*n+j]
		}
	}

	return L, nil
}

// Determinant returns det(m) using Gaussian elimination with partial pivoting
// on a private copy.
//
// Behavior highlights:
//   - Row swaps flip the sign; an exactly zero column yields 0 (not an error).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := src.r
	w := make([]float64, len(src.data))
	copy(w, src.data)

	det := 1.0
	var col, row, best, j int
	var pivot, factor float64
	for col = 0; col < n; col++ {
		// Partial pivoting: largest magnitude in the current column.
		best = col
		for row = col + 1; row < n; row++ {
			if math.Abs(w[row*n+col]) > math.Abs(w[best*n+col]) {
				best = row
			}
		}
		pivot = w[best*n+col]
		if pivot == ZeroPivot {
			return 0, nil
		}
		if best != col {
			for j = 0; j < n; j++ {
				w[col*n+j], w[best*n+j] = w[best*n+j], w[col*n+j]
			}
			det = -det
		}
		det *= pivot
		for row = col + 1; row < n; row++ {
			factor = w[row*n+col] / pivot
			if factor == 0 {
				continue
			}
			for j = col; j < n; j++ {
				w[row*n+j] -= factor * w[col*n+j]
			}
		}
	}

	return det, nil
}

// Minor returns the (n-1)×(n-1) submatrix of m with row r and column c removed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange,
//     ErrInvalidDimensions when m is 1×1 (the minor would be empty).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, r, c int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if r < 0 || r >= n || c < 0 || c >= n {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	out, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	var i, j, oi, oj int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		oj = 0
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			out.data[oi*(n-1)+oj] = src.data[i*n+j]
			oj++
		}
		oi++
	}

	return out, nil
}

// Cofactor returns the cofactor matrix C with C[r,c] = (-1)^(r+c) * det(Minor(m, r, c)).
// For a 1×1 input the cofactor matrix is [1] by convention (empty minor has det 1).
//
// Notes:
//   - C = det(m) * (m⁻¹)ᵀ for invertible m, so column c of C is orthogonal to
//     every column of m except column c.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n⁵) via n² determinants; fine for the D ≤ 8 matrices used here.
func Cofactor(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if n == 1 {
		out.data[0] = 1

		return out, nil
	}

	var r, c int
	var minor *Dense
	var det, sign float64
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if minor, err = Minor(m, r, c); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if det, err = Determinant(minor); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			sign = 1
			if (r+c)%2 == 1 {
				sign = -1
			}
			out.data[r*n+c] = sign * det
		}
	}

	return out, nil
}
