package polytope

import (
	"errors"

	"github.com/katalvlaran/wythoff/flag"
)

var (
	// ErrNoFlags is returned when Extract receives an empty flag set.
	ErrNoFlags = errors.New("polytope: no flags")

	// ErrRingsLength is returned when the ring pattern length differs from D.
	ErrRingsLength = errors.New("polytope: ring pattern length differs from dimension")

	// ErrNoRings is returned when no node is ringed; the generating point
	// would be the zero vector.
	ErrNoRings = errors.New("polytope: ring pattern selects no node")
)

// DefaultVertexEpsilon2 is the squared-distance tolerance under which two
// generated points are the same polytope vertex.
const DefaultVertexEpsilon2 = 1e-4

// EdgeCapAuto makes the extractor stop after D adjacent flags per flag, the
// number of walls of a simplex.
const EdgeCapAuto = -1

// Option configures Extract.
type Option func(*Options)

// Options holds the extractor's tolerances and limits.
type Options struct {
	// VertexEpsilon2 merges generated points closer than this (squared).
	VertexEpsilon2 float64

	// FlagEpsilon2 is the tolerance passed to flag.Compare in the edge pass.
	FlagEpsilon2 float64

	// EdgeCap bounds the adjacent flags examined per flag: EdgeCapAuto means
	// D, 0 means unlimited, n > 0 means n.
	EdgeCap int
}

// DefaultOptions returns Options with the package tolerances and EdgeCapAuto.
func DefaultOptions() Options {
	return Options{
		VertexEpsilon2: DefaultVertexEpsilon2,
		FlagEpsilon2:   flag.DefaultEpsilon2,
		EdgeCap:        EdgeCapAuto,
	}
}

// WithVertexEpsilon2 sets the vertex merge tolerance. Panics unless eps2 > 0.
func WithVertexEpsilon2(eps2 float64) Option {
	if !(eps2 > 0) {
		panic("polytope: WithVertexEpsilon2 requires eps2 > 0")
	}
	return func(o *Options) { o.VertexEpsilon2 = eps2 }
}

// WithFlagEpsilon2 sets the flag comparison tolerance. Panics unless eps2 > 0.
func WithFlagEpsilon2(eps2 float64) Option {
	if !(eps2 > 0) {
		panic("polytope: WithFlagEpsilon2 requires eps2 > 0")
	}
	return func(o *Options) { o.FlagEpsilon2 = eps2 }
}

// WithEdgeCap sets the per-flag adjacency cap (EdgeCapAuto, 0 or positive).
// Panics on other negative values.
func WithEdgeCap(n int) Option {
	if n < EdgeCapAuto {
		panic("polytope: WithEdgeCap requires n >= -1")
	}
	return func(o *Options) { o.EdgeCap = n }
}

// Edge is an unordered pair of vertex indices stored with A < B.
type Edge struct {
	A, B int
}

// newEdge orders i and j.
func newEdge(i, j int) Edge {
	if j < i {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

// Skeleton is the vertex/edge graph of a Wythoffian polytope.
type Skeleton struct {
	// Dim is the dimension of the ambient space (D).
	Dim int

	// Vertices holds unit-length points in first-seen order.
	Vertices []flag.Vector

	// FlagVertex maps flag i to the index of its vertex in Vertices.
	FlagVertex []int

	// Edges lists each unordered vertex pair once, in discovery order.
	Edges []Edge
}

// Export is the renderer-facing, serialization-friendly form of a Skeleton.
type Export struct {
	Dim      int         `json:"dim" yaml:"dim"`
	Vertices [][]float64 `json:"vertices" yaml:"vertices"`
	Edges    [][2]int    `json:"edges" yaml:"edges"`
}
