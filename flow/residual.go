package flow

import "github.com/flowkit/mcmf/core"

// arc is one direction of a residual edge pair. The reverse arc of arcs[i]
// is always arcs[i^1]: forward arcs sit at even indices 2·edgeID, reverse
// arcs at the odd index right after.
type arc struct {
	to  int   // head vertex id
	cap int64 // remaining residual capacity
}

// residual is the solver-private working network: an owned arc array plus
// per-vertex adjacency over arc indices. It is created for one Dinic call,
// mutated in place, and discarded.
type residual struct {
	arcs []arc
	adj  [][]int // vertex id → arc indices, forward arcs in graph order
}

// buildResidual constructs the residual network for g. Forward arcs inherit
// the edge capacities; reverse arcs start empty. Adjacency lists preserve the
// graph's fixed out-edge ordering (forward arcs first-seen order), which
// makes every traversal in this package deterministic.
//
// Complexity: O(V + E) time and memory.
func buildResidual(g *core.Graph) *residual {
	n := g.VertexCount()
	r := &residual{
		arcs: make([]arc, 2*g.EdgeCount()),
		adj:  make([][]int, n),
	}
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			ed := g.Edge(e)
			r.arcs[2*e] = arc{to: ed.To, cap: ed.Capacity}
			r.arcs[2*e+1] = arc{to: ed.From}
			r.adj[ed.From] = append(r.adj[ed.From], 2*e)
			r.adj[ed.To] = append(r.adj[ed.To], 2*e+1)
		}
	}

	return r
}
