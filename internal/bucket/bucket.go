// Package bucket is a one-dimensional spatial hash for points compared under
// a distance tolerance.
//
// Points are projected onto a fixed generic direction and binned into cells
// of width >= tol. Two points closer than tol project less than tol apart, so
// they land in the same or adjacent cells: probing a cell and its two
// neighbours never misses a true match. Callers still confirm candidates with
// their exact predicate, so the hash only narrows the search and never changes
// the equality semantics.
package bucket

import "math"

// widthFactor scales the tolerance into the cell width. Any factor >= 1 is
// correct.
const widthFactor = 4

// Index maps points to the ids inserted with them.
type Index struct {
	dir   []float64
	width float64
	cells map[int64][]int
}

// New returns an index for dim-dimensional points matched within Euclidean
// distance tol. tol must be > 0.
func New(dim int, tol float64) *Index {
	if dim <= 0 || !(tol > 0) {
		panic("bucket: dim and tol must be positive")
	}
	// Irrational, strictly increasing weights avoid the symmetric ties a
	// coordinate axis or the all-ones direction would hit on orbit points.
	dir := make([]float64, dim)
	var n2 float64
	for i := range dir {
		dir[i] = 1 + float64(i)*math.Phi
		n2 += dir[i] * dir[i]
	}
	inv := 1 / math.Sqrt(n2)
	for i := range dir {
		dir[i] *= inv
	}

	return &Index{dir: dir, width: widthFactor * tol, cells: make(map[int64][]int)}
}

func (x *Index) key(p []float64) int64 {
	var s float64
	for i, v := range p {
		s += v * x.dir[i]
	}

	return int64(math.Floor(s / x.width))
}

// Insert records id under point p.
func (x *Index) Insert(p []float64, id int) {
	k := x.key(p)
	x.cells[k] = append(x.cells[k], id)
}

// Find returns the first id near p for which match reports true, probing the
// home cell first and then its neighbours. Ids within a cell are tried in
// insertion order.
func (x *Index) Find(p []float64, match func(id int) bool) (int, bool) {
	k := x.key(p)
	for _, c := range [3]int64{k, k - 1, k + 1} {
		for _, id := range x.cells[c] {
			if match(id) {
				return id, true
			}
		}
	}

	return 0, false
}

// Len returns the number of non-empty cells.
func (x *Index) Len() int { return len(x.cells) }
