package graph

// Arc is one directed edge: a destination vertex and its weight.
type Arc struct {
	To     int
	Weight float64
}

// Graph is an immutable directed graph over dense vertex indices 0..n-1.
// It is produced by Builder.Build and never mutated afterwards, so it is
// safe to share by reference across every BMSSP recursion frame.
type Graph struct {
	n   int
	adj [][]Arc
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Neighbors returns the outgoing arcs of u. The returned slice must not be
// mutated by the caller; it is the Graph's own backing storage.
func (g *Graph) Neighbors(u int) []Arc { return g.adj[u] }
