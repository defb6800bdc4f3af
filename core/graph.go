package core

// Graph is an immutable directed multigraph produced by Builder.Finalize.
//
// All accessors are read-only and therefore safe for concurrent readers;
// nothing in this package mutates a Graph after construction.
type Graph struct {
	labels []string
	ids    map[string]int
	edges  []Edge
	out    [][]int
}

// VertexCount reports the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount reports the number of edge instances, counting parallels.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexID resolves a label to its vertex id. The boolean reports whether
// the label was ever registered.
func (g *Graph) VertexID(label string) (int, bool) {
	id, ok := g.ids[label]

	return id, ok
}

// Label returns the label of vertex id. Panics on an out-of-range id, which
// can only come from caller code that fabricated an id.
func (g *Graph) Label(id int) string { return g.labels[id] }

// Edge returns the edge instance with the given id by value.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// OutEdges returns the out-edge ids of vertex u in insertion order — the
// graph's fixed adjacency ordering. The returned slice is shared internal
// storage and must not be modified.
func (g *Graph) OutEdges(u int) []int { return g.out[u] }

// Capacities returns a fresh slice of per-edge capacities indexed by edge
// id, suitable as an owned working buffer for solvers.
// Complexity: O(E)
func (g *Graph) Capacities() []int64 {
	caps := make([]int64, len(g.edges))
	for i := range g.edges {
		caps[i] = g.edges[i].Capacity
	}

	return caps
}
