// Package flag implements the fundamental domain ("flag") of a reflection
// arrangement: D points in D-dimensional space spanning one simplex cut out
// by the mirrors.
//
// Flags are values. Reflect always returns a new Flag, and no operation in
// this package mutates its receiver, so flags can be shared freely between the
// generator, the cache and the polytope extractor.
//
// Equality is approximate: two flags are the same domain when every vertex of
// one lies within a squared distance DefaultEpsilon2 of some vertex of the
// other (Compare == D). Adjacent domains share exactly D-1 vertices.
package flag

import (
	"fmt"

	"github.com/katalvlaran/wythoff/matrix"
)

// DefaultEpsilon2 is the squared-distance tolerance under which two flag
// vertices are considered the same point.
const DefaultEpsilon2 = 1e-5

// Flag is one fundamental simplex. Vertices[i] is the i-th point; each point
// has length D == len(Vertices).
type Flag struct {
	Vertices []Vector
}

// New validates that vertices are D points of dimension D and returns a flag
// holding deep copies of them.
func New(vertices []Vector) (Flag, error) {
	d := len(vertices)
	if d == 0 {
		return Flag{}, ErrEmpty
	}
	out := make([]Vector, d)
	for i, v := range vertices {
		if len(v) != d {
			return Flag{}, fmt.Errorf("vertex %d has %d coordinates, want %d: %w", i, len(v), d, ErrDimensionMismatch)
		}
		out[i] = v.Clone()
	}

	return Flag{Vertices: out}, nil
}

// Columns returns the columns of m as vectors (mirror normals are stored
// column-wise by coxeter.Matrix.Mirrors).
func Columns(m matrix.Matrix) ([]Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]Vector, cols)
	var i, j int
	var err error
	for j = 0; j < cols; j++ {
		out[j] = make(Vector, rows)
		for i = 0; i < rows; i++ {
			if out[j][i], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// FromMirrors builds the starting flag from a D×D matrix whose columns are
// mirror normals. Component r of vertex c is (-1)^r · det(minor(r, c)): the
// cofactor column c times (-1)^c, the sign alternating with the row index.
// Vertex c is orthogonal to every mirror except mirror c, and v_c·m_c equals
// (-1)^c · det(M). With the positive-cosine Gram matrix the simplex is then
// a single chamber of the arrangement.
func FromMirrors(m matrix.Matrix) (Flag, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Flag{}, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return Flag{}, fmt.Errorf("mirror matrix: %w", ErrDimensionMismatch)
	}
	cof, err := matrix.Cofactor(m)
	if err != nil {
		return Flag{}, err
	}
	vertices, err := Columns(cof)
	if err != nil {
		return Flag{}, err
	}
	for c := 1; c < len(vertices); c += 2 {
		for r := range vertices[c] {
			vertices[c][r] = -vertices[c][r]
		}
	}

	return Flag{Vertices: vertices}, nil
}

// Dim returns D.
func (f Flag) Dim() int { return len(f.Vertices) }

// Reflect returns the flag mirrored across the hyperplane orthogonal to v:
// every vertex c becomes c - 2(c·v)/(v·v)·v.
func (f Flag) Reflect(v Vector) (Flag, error) {
	if len(v) != f.Dim() {
		return Flag{}, fmt.Errorf("reflect across %d-vector: %w", len(v), ErrDimensionMismatch)
	}
	vv := v.Norm2()
	if vv == 0 {
		return Flag{}, ErrZeroVector
	}
	out := make([]Vector, len(f.Vertices))
	var k float64
	for i, c := range f.Vertices {
		k = 2 * c.Dot(v) / vv
		r := make(Vector, len(c))
		for j := range c {
			r[j] = c[j] - k*v[j]
		}
		out[i] = r
	}

	return Flag{Vertices: out}, nil
}

// Compare counts how many vertices of a have a match in b, i.e. some vertex
// of b at squared distance < eps2. The first match wins. Flags of different
// dimensions share no vertices.
func Compare(a, b Flag, eps2 float64) int {
	if a.Dim() != b.Dim() {
		return 0
	}
	count := 0
	for _, p := range a.Vertices {
		for _, q := range b.Vertices {
			if p.Dist2(q) < eps2 {
				count++
				break
			}
		}
	}

	return count
}

// Compare is Compare(f, other, DefaultEpsilon2).
func (f Flag) Compare(other Flag) int { return Compare(f, other, DefaultEpsilon2) }

// Same reports whether f and other are the same domain (Compare == D).
func (f Flag) Same(other Flag) bool { return f.Compare(other) == f.Dim() }

// Adjacent reports whether f and other share exactly D-1 vertices, i.e.
// differ by a single reflection.
func (f Flag) Adjacent(other Flag) bool { return f.Compare(other) == f.Dim()-1 }

// RingsToPoint sums the vertices selected by rings and normalizes the result.
// This is the Wythoff construction of one polytope vertex from one flag.
//
// Errors:
//   - ErrDimensionMismatch when len(rings) != D.
//   - ErrZeroVector when no vertex is selected (or the selection cancels out).
func (f Flag) RingsToPoint(rings []bool) (Vector, error) {
	if len(rings) != f.Dim() {
		return nil, fmt.Errorf("%d rings for dimension %d: %w", len(rings), f.Dim(), ErrDimensionMismatch)
	}
	sum := make(Vector, f.Dim())
	for i, ringed := range rings {
		if !ringed {
			continue
		}
		for j, x := range f.Vertices[i] {
			sum[j] += x
		}
	}

	return sum.Normalize()
}

// Centroid returns the mean of the flag's vertices. It does not depend on
// vertex order, so same-domain flags have centroids within sqrt(eps2).
func (f Flag) Centroid() Vector {
	c := make(Vector, f.Dim())
	if f.Dim() == 0 {
		return c
	}
	for _, v := range f.Vertices {
		for j, x := range v {
			c[j] += x
		}
	}
	inv := 1 / float64(f.Dim())
	for j := range c {
		c[j] *= inv
	}

	return c
}

// Matrix returns the D×D vertex matrix with vertex i stored in column i.
func (f Flag) Matrix() (*matrix.Dense, error) {
	d := f.Dim()
	m, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for c, v := range f.Vertices {
		for r, x := range v {
			if err = m.Set(r, c, x); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
