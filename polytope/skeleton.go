package polytope

import "math"

// Degrees returns the number of edges incident to each vertex.
func (s *Skeleton) Degrees() []int {
	deg := make([]int, len(s.Vertices))
	for _, e := range s.Edges {
		deg[e.A]++
		deg[e.B]++
	}

	return deg
}

// adjacency returns the neighbour lists of the vertex graph.
func (s *Skeleton) adjacency() [][]int {
	adj := make([][]int, len(s.Vertices))
	for _, e := range s.Edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	return adj
}

// IsConnected reports whether every vertex is reachable from vertex 0 by a
// breadth-first walk over the edges. An empty skeleton is not connected.
func (s *Skeleton) IsConnected() bool {
	n := len(s.Vertices)
	if n == 0 {
		return false
	}
	adj := s.adjacency()
	visited := make([]bool, n)
	queue := make([]int, 0, n)

	// Seed queue with vertex 0
	visited[0] = true
	queue = append(queue, 0)
	seen := 1
	var id int
	for len(queue) > 0 {
		id, queue = queue[0], queue[1:]
		for _, nbr := range adj[id] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			seen++
			queue = append(queue, nbr)
		}
	}

	return seen == n
}

// EdgeLengths returns the Euclidean length of every edge, in Edges order.
// Ringing a single node of a connected diagram yields a uniform polytope, so
// all lengths agree up to rounding.
func (s *Skeleton) EdgeLengths() []float64 {
	out := make([]float64, len(s.Edges))
	for i, e := range s.Edges {
		out[i] = math.Sqrt(s.Vertices[e.A].Dist2(s.Vertices[e.B]))
	}

	return out
}

// Export converts s into its serialization-friendly form. Slices are copied.
func (s *Skeleton) Export() Export {
	out := Export{
		Dim:      s.Dim,
		Vertices: make([][]float64, len(s.Vertices)),
		Edges:    make([][2]int, len(s.Edges)),
	}
	for i, v := range s.Vertices {
		out.Vertices[i] = append([]float64(nil), v...)
	}
	for i, e := range s.Edges {
		out.Edges[i] = [2]int{e.A, e.B}
	}

	return out
}
