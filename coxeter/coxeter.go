// Package coxeter models the Coxeter matrix of a finite reflection group and
// derives the unit mirror normals of its generating reflections.
//
// Entry (i, j) of a Coxeter matrix is the integer m such that mirrors i and j
// meet at the dihedral angle π/m: 1 on the diagonal, 2 for orthogonal mirrors.
//
//	A3:  [1 3 2]      o---o---o
//	     [3 1 3]
//	     [2 3 1]
//
// Mirrors builds the Gram matrix G[i][j] = cos(π/m[i][j]) and takes its
// Cholesky factor; a diagram whose Gram matrix is not positive definite has no
// finite mirror arrangement and is rejected with ErrNotSpherical.
package coxeter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/wythoff/matrix"
)

// MaxEntry is the largest entry a Coxeter matrix may carry: one base-36 digit.
const MaxEntry = 35

// CacheExt is the extension appended to cache names.
const CacheExt = ".flag"

// Matrix is an immutable, validated D×D Coxeter matrix.
type Matrix struct {
	dim     int
	entries []int // row-major, len == dim*dim
}

// New validates rows and returns an independent Matrix.
//
// Errors (all wrap ErrInvalidMatrix):
//   - ErrEmpty, ErrNonSquare, ErrDiagonal, ErrOffDiagonal, ErrAsymmetric, ErrEntryTooLarge.
func New(rows [][]int) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, ErrEmpty
	}
	entries := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		entries = append(entries, row...)
	}

	var i, j, v int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = entries[i*n+j]
			switch {
			case i == j && v != 1:
				return Matrix{}, fmt.Errorf("m[%d][%d] = %d: %w", i, j, v, ErrDiagonal)
			case i != j && v < 2:
				return Matrix{}, fmt.Errorf("m[%d][%d] = %d: %w", i, j, v, ErrOffDiagonal)
			case v > MaxEntry:
				return Matrix{}, fmt.Errorf("m[%d][%d] = %d: %w", i, j, v, ErrEntryTooLarge)
			case v != entries[j*n+i]:
				return Matrix{}, fmt.Errorf("m[%d][%d] = %d, m[%d][%d] = %d: %w",
					i, j, v, j, i, entries[j*n+i], ErrAsymmetric)
			}
		}
	}

	return Matrix{dim: n, entries: entries}, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(rows [][]int) Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Dim returns D, the number of generating mirrors.
func (m Matrix) Dim() int { return m.dim }

// At returns entry (i, j). Indices are not checked beyond slice bounds.
func (m Matrix) At(i, j int) int { return m.entries[i*m.dim+j] }

// Rows returns a fresh copy of the matrix as nested slices.
func (m Matrix) Rows() [][]int {
	out := make([][]int, m.dim)
	for i := range out {
		out[i] = append([]int(nil), m.entries[i*m.dim:(i+1)*m.dim]...)
	}

	return out
}

// String renders the matrix in the "1,3,2;3,1,3;2,3,1" form accepted by ParseMatrix.
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.dim; i++ {
		if i > 0 {
			sb.WriteByte(';')
		}
		for j := 0; j < m.dim; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(m.At(i, j)))
		}
	}

	return sb.String()
}

// Gram returns G with G[i][i] = 1 and G[i][j] = cos(π/m[i][j]).
func (m Matrix) Gram() (*matrix.Dense, error) {
	if m.dim == 0 {
		return nil, ErrEmpty
	}
	values := make([]float64, len(m.entries))
	for k, e := range m.entries {
		values[k] = 1
		if k/m.dim != k%m.dim {
			values[k] = math.Cos(math.Pi / float64(e))
		}
	}

	return matrix.NewDenseFrom(m.dim, m.dim, values)
}

// gramTolerance bounds |(Lᵀ)ᵀ·Lᵀ - G| entry-wise after factorization.
const gramTolerance = 1e-9

// Mirrors returns the D×D matrix whose columns are unit mirror normals with
// pairwise dot products equal to the Gram matrix.
//
// Implementation:
//   - Stage 1: G = Gram().
//   - Stage 2: L = Cholesky(G), G = L·Lᵀ.
//   - Stage 3: M = Lᵀ; its columns are the rows of L.
//   - Stage 4: check Mᵀ·M reproduces G within gramTolerance.
//
// Errors:
//   - ErrNotSpherical (wrapping matrix.ErrNotPositiveDefinite) for affine or
//     hyperbolic diagrams, or when the factor does not reproduce G.
func (m Matrix) Mirrors() (*matrix.Dense, error) {
	g, err := m.Gram()
	if err != nil {
		return nil, err
	}
	L, err := matrix.Cholesky(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotSpherical, err)
	}
	mirrors, err := matrix.Transpose(L)
	if err != nil {
		return nil, err
	}

	back, err := matrix.Mul(L, mirrors)
	if err != nil {
		return nil, err
	}
	var i, j int
	var want, got float64
	for i = 0; i < m.dim; i++ {
		for j = 0; j < m.dim; j++ {
			want, _ = g.At(i, j)
			got, _ = back.At(i, j)
			if math.Abs(want-got) > gramTolerance {
				return nil, fmt.Errorf("%w: mirror dot product (%d, %d) = %g, want %g", ErrNotSpherical, i, j, got, want)
			}
		}
	}

	return mirrors, nil
}

// CacheName returns the deterministic cache file name for m: the lower
// triangle including the diagonal, row-major, one base-36 digit per entry,
// followed by CacheExt. The F4 matrix [[1,3,2,2],[3,1,4,2],[2,4,1,3],[2,2,3,1]]
// maps to "1312412231.flag".
func (m Matrix) CacheName() string {
	var sb strings.Builder
	sb.Grow(m.dim*(m.dim+1)/2 + len(CacheExt))
	for r := 0; r < m.dim; r++ {
		for c := 0; c <= r; c++ {
			sb.WriteString(strconv.FormatInt(int64(m.At(r, c)), 36))
		}
	}
	sb.WriteString(CacheExt)

	return sb.String()
}

// ParseMatrix parses the compact "1,3,2;3,1,3;2,3,1" form: rows separated by
// ';', entries by ',', surrounding whitespace ignored.
func ParseMatrix(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Matrix{}, ErrEmpty
	}
	var rows [][]int
	for _, rs := range strings.Split(s, ";") {
		var row []int
		for _, es := range strings.Split(rs, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(es))
			if err != nil {
				return Matrix{}, fmt.Errorf("%w: entry %q: %w", ErrInvalidMatrix, es, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return New(rows)
}
