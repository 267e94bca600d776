// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wythoff/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels off the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values or fails the test.
func NewFilledDense(t *testing.T, r, c int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, values)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// AssertAllClose fails when any |a[i,j]-b[i,j]| > tol or shapes differ.
func AssertAllClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("at[%d,%d]: want %.12g, got %.12g", i, j, bv, av)
			}
		}
	}
}
