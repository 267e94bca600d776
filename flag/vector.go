package flag

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a point or direction in D-dimensional space.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return append(Vector(nil), v...)
}

// Dot returns v·w. Both vectors must have the same length.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}

	return sum
}

// Norm2 returns the squared Euclidean length of v.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Dist2 returns the squared Euclidean distance between v and w.
func (v Vector) Dist2(w Vector) float64 {
	var sum, d float64
	for i := range v {
		d = v[i] - w[i]
		sum += d * d
	}

	return sum
}

// Normalize returns v scaled to unit length.
func (v Vector) Normalize() (Vector, error) {
	n2 := v.Norm2()
	if n2 == 0 {
		return nil, ErrZeroVector
	}
	inv := 1 / math.Sqrt(n2)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * inv
	}

	return out, nil
}

// String renders v as "(x, y, z)" with %g formatting.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
