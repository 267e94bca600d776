package orbit

import (
	"math"

	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/internal/bucket"
)

// Index is the discovered-flag set consulted by Generate. Membership is
// tolerance-based: Find reports a stored flag that is the same domain as f.
type Index interface {
	// Find returns the position of a stored flag matching f, if any.
	Find(f flag.Flag) (int, bool)

	// Add stores f and returns its position. Add does not check membership.
	Add(f flag.Flag) int

	// Len returns the number of stored flags.
	Len() int

	// Flags returns the stored flags in insertion order. The slice is owned
	// by the index and must not be modified.
	Flags() []flag.Flag
}

// LinearIndex scans every stored flag on Find. O(n) per lookup; kept as the
// reference implementation.
type LinearIndex struct {
	eps2  float64
	flags []flag.Flag
}

// NewLinearIndex returns an empty linear-scan index using tolerance eps2.
func NewLinearIndex(eps2 float64) *LinearIndex {
	return &LinearIndex{eps2: eps2}
}

// Find implements Index.
func (x *LinearIndex) Find(f flag.Flag) (int, bool) {
	d := f.Dim()
	for i, g := range x.flags {
		if flag.Compare(f, g, x.eps2) == d {
			return i, true
		}
	}

	return 0, false
}

// Add implements Index.
func (x *LinearIndex) Add(f flag.Flag) int {
	x.flags = append(x.flags, f)
	return len(x.flags) - 1
}

// Len implements Index.
func (x *LinearIndex) Len() int { return len(x.flags) }

// Flags implements Index.
func (x *LinearIndex) Flags() []flag.Flag { return x.flags }

// BucketIndex hashes flags by their centroid and confirms candidates with
// flag.Compare, so it accepts exactly the flags LinearIndex would while
// inspecting only a few neighbours per lookup.
type BucketIndex struct {
	eps2  float64
	dim   int
	cells *bucket.Index
	flags []flag.Flag
}

// NewBucketIndex returns an empty bucket index using tolerance eps2. The
// hash is allocated on the first Add, once the dimension is known.
func NewBucketIndex(eps2 float64) *BucketIndex {
	return &BucketIndex{eps2: eps2}
}

// Find implements Index.
func (x *BucketIndex) Find(f flag.Flag) (int, bool) {
	if x.cells == nil || f.Dim() != x.dim {
		return 0, false
	}
	d := f.Dim()

	return x.cells.Find(f.Centroid(), func(id int) bool {
		return flag.Compare(f, x.flags[id], x.eps2) == d
	})
}

// Add implements Index.
func (x *BucketIndex) Add(f flag.Flag) int {
	if x.cells == nil {
		x.dim = f.Dim()
		// Same-domain centroids differ by less than sqrt(eps2).
		x.cells = bucket.New(x.dim, math.Sqrt(x.eps2))
	}
	id := len(x.flags)
	x.flags = append(x.flags, f)
	x.cells.Insert(f.Centroid(), id)

	return id
}

// Len implements Index.
func (x *BucketIndex) Len() int { return len(x.flags) }

// Flags implements Index.
func (x *BucketIndex) Flags() []flag.Flag { return x.flags }
