package decompose

import (
	"math"

	"github.com/flowkit/mcmf/core"
)

// Paths decomposes the per-edge flow assignment `flows` (indexed by edge id)
// into elementary source→sink paths whose flow amounts reconstruct the
// assignment exactly: the amounts sum to the total flow value, and for every
// edge the amounts of the paths traversing it sum to flows[edge].
//
// The assignment must satisfy conservation at every vertex other than source
// and sink; `flows` itself is never modified — the engine works on a private
// residual copy that lives and dies inside this call.
//
// Steps:
//  1. Validate ids and the flow-slice shape (O(1)).
//  2. Copy flows into the residual table (O(E)).
//  3. Depth-first peel from source (see package doc), emitting a path each
//     time the sink is reached and draining the bottleneck from the whole
//     edge stack.
//  4. Verify the unwind postcondition: prefix == [source], empty edge stack,
//     all-zero residual. Any violation returns ErrInconsistentFlow.
//
// Complexity: O(E·P) time with P emitted paths; O(V + E) memory.
func Paths(g *core.Graph, flows []int64, source, sink int) ([]Path, error) {
	// 1) Validate inputs eagerly
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkNotFound
	}
	if len(flows) != g.EdgeCount() {
		return nil, ErrFlowSize
	}

	// 2) Private residual copy, exclusively owned by this call
	p := &peeler{
		graph:    g,
		sink:     sink,
		residual: append([]int64(nil), flows...),
		prefix:   []int{source},
	}

	// 3) Peel with an unbounded initial bottleneck
	p.walk(math.MaxInt64)

	// 4) Postcondition: clean unwind and fully drained residual
	if len(p.prefix) != 1 || p.prefix[0] != source || len(p.stack) != 0 {
		return nil, ErrInconsistentFlow
	}
	for _, r := range p.residual {
		if r != 0 {
			return nil, ErrInconsistentFlow
		}
	}

	return p.paths, nil
}

// peeler holds the walk state: the vertex prefix, the parallel edge-instance
// stack, the residual table, and the emitted paths. It is created per Paths
// call and never escapes it.
type peeler struct {
	graph    *core.Graph
	sink     int
	residual []int64 // edge id → not-yet-decomposed flow
	prefix   []int   // vertex path from source to the current vertex
	stack    []int   // edge ids joining consecutive prefix vertices
	paths    []Path
}

// walk extends the current prefix from its last vertex, trying every
// outgoing edge with positive residual in the graph's fixed adjacency
// order. bottleneck is the smallest residual along the prefix so far.
//
// Each branch is unconditionally popped afterwards, emitted or not, so the
// remaining out-edges of the current vertex are explored with the prefix
// restored — all flow reachable from this prefix is drained before control
// returns to the caller.
func (p *peeler) walk(bottleneck int64) {
	u := p.prefix[len(p.prefix)-1]
	for _, e := range p.graph.OutEdges(u) {
		if p.residual[e] <= 0 {
			continue
		}
		branch := bottleneck
		if p.residual[e] < branch {
			branch = p.residual[e]
		}
		v := p.graph.Edge(e).To
		p.prefix = append(p.prefix, v)
		p.stack = append(p.stack, e)
		if v == p.sink {
			p.emit(branch)
		} else {
			p.walk(branch)
		}
		p.prefix = p.prefix[:len(p.prefix)-1]
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// emit records the current prefix as one decomposed path carrying `flow`,
// then subtracts that amount from every edge on the stack — the whole
// accumulated path, not just the closing edge — so each edge stays
// consistent with the amount actually claimed.
func (p *peeler) emit(flow int64) {
	nodes := make([]string, len(p.prefix))
	for i, v := range p.prefix {
		nodes[i] = p.graph.Label(v)
	}
	p.paths = append(p.paths, Path{Flow: flow, Nodes: nodes})
	for _, e := range p.stack {
		p.residual[e] -= flow
	}
}
