// Package polytope derives the vertex/edge skeleton of a Wythoffian polytope
// from the flags of its reflection group.
//
// Vertex pass: every flag yields one point (the normalized sum of its ringed
// vertices); points closer than VertexEpsilon2 are merged, and FlagVertex
// records which vertex each flag produced.
//
// Edge pass: two flags sharing exactly D-1 vertices are adjacent domains; if
// their points differ, the pair of points is an edge. Flags mapping to the
// same point (an unringed wall) produce no edge.
//
// Complexity: O(N) bucket lookups for the vertex pass, O(N²·D²) comparisons
// for the edge pass, cut short by the per-flag cap.
package polytope

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/internal/bucket"
)

// Extract builds the skeleton of the polytope with ring pattern rings from
// the complete flag set flags. The input is not modified.
//
// Errors:
//   - ErrNoFlags, ErrRingsLength, ErrNoRings.
//   - flag.ErrDimensionMismatch when flags disagree on dimension.
func Extract(flags []flag.Flag, rings []bool, opts ...Option) (*Skeleton, error) {
	// 1. Validate input
	if len(flags) == 0 {
		return nil, ErrNoFlags
	}
	d := flags[0].Dim()
	if len(rings) != d {
		return nil, fmt.Errorf("%w: %d rings, dimension %d", ErrRingsLength, len(rings), d)
	}
	ringed := false
	for _, r := range rings {
		ringed = ringed || r
	}
	if !ringed {
		return nil, ErrNoRings
	}
	for i, f := range flags {
		if f.Dim() != d {
			return nil, fmt.Errorf("polytope: flag %d has dimension %d, want %d: %w", i, f.Dim(), d, flag.ErrDimensionMismatch)
		}
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Skeleton{Dim: d}
	if err := s.vertexPass(flags, rings, o); err != nil {
		return nil, err
	}
	s.edgePass(flags, o)

	return s, nil
}

// vertexPass fills Vertices and FlagVertex.
func (s *Skeleton) vertexPass(flags []flag.Flag, rings []bool, o Options) error {
	s.FlagVertex = make([]int, len(flags))
	cells := bucket.New(s.Dim, math.Sqrt(o.VertexEpsilon2))

	for i, f := range flags {
		p, err := f.RingsToPoint(rings)
		if err != nil {
			return fmt.Errorf("polytope: flag %d: %w", i, err)
		}
		if j, ok := cells.Find(p, func(id int) bool {
			return s.Vertices[id].Dist2(p) < o.VertexEpsilon2
		}); ok {
			s.FlagVertex[i] = j
			continue
		}
		j := len(s.Vertices)
		s.Vertices = append(s.Vertices, p)
		cells.Insert(p, j)
		s.FlagVertex[i] = j
	}

	return nil
}

// edgePass fills Edges from adjacent flag pairs.
func (s *Skeleton) edgePass(flags []flag.Flag, o Options) {
	limit := o.EdgeCap
	if limit == EdgeCapAuto {
		limit = s.Dim
	}
	adjacent := s.Dim - 1
	seen := make(map[Edge]struct{})

	var found int
	for i, a := range flags {
		found = 0
		for j, b := range flags {
			if limit > 0 && found == limit {
				break
			}
			if i == j || flag.Compare(a, b, o.FlagEpsilon2) != adjacent {
				continue
			}
			found++
			vi, vj := s.FlagVertex[i], s.FlagVertex[j]
			if vi == vj {
				continue // both flags generate the same point
			}
			e := newEdge(vi, vj)
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			s.Edges = append(s.Edges, e)
		}
	}
}
