package flow

import (
	"fmt"
	"math"

	"github.com/flowkit/mcmf/core"
)

// Dinic computes the maximum flow from `source` to `sink` in the frozen
// directed multigraph `g` using Dinic’s algorithm (level graph + blocking
// flows).
//
// It returns:
//   - maxFlow : the total flow value (int64)
//   - err     : ErrSourceNotFound, ErrSinkNotFound, or context cancellation
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Validate that `source` and `sink` are vertex ids of `g` (O(1)).
//  3. Build the private residual network with paired reverse arcs (O(V + E)).
//  4. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS over positive-capacity arcs to assign levels (O(V + E)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking-flow pushes with per-vertex arc iterators until
//     no augmenting path remains in the level graph.
//  5. Return the accumulated flow value.
//
// source == sink is a degenerate instance and yields zero flow.
//
// Complexity:
//
//	Time:   O(E·V²) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for the residual arcs, level slice, and iterators.
func Dinic(g *core.Graph, source, sink int, opts Options) (int64, error) {
	// 1) Normalize options (set default Ctx if needed)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate source and sink ids
	n := g.VertexCount()
	if source < 0 || source >= n {
		return 0, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil
	}

	// 3) Build the private residual network
	r := buildResidual(g)
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)

	var maxFlow int64
	// 4) Main loop: level graph + blocking flows
	for {
		// 4a) Cancellation check before BFS
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		// 4b) BFS to compute levels over arcs with remaining capacity
		for i := range level {
			level[i] = -1
		}
		queue = append(queue[:0], source)
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range r.adj[u] {
				if r.arcs[a].cap > 0 && level[r.arcs[a].to] < 0 {
					level[r.arcs[a].to] = level[u] + 1
					queue = append(queue, r.arcs[a].to)
				}
			}
		}
		// 4c) If sink unreachable in level graph, we're done
		if level[sink] < 0 {
			break
		}

		// 4d) DFS-based blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dfsPush(r, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			if opts.Verbose {
				fmt.Printf("Dinic: pushed %d, total %d\n", pushed, maxFlow)
			}
		}
	}

	return maxFlow, nil
}

// dfsPush recursively pushes flow along the level graph, updating the
// residual arcs in-place, and returns the amount actually sent. iter holds
// the per-vertex arc cursor so saturated arcs are never revisited within
// one blocking-flow phase.
func dfsPush(r *residual, level, iter []int, u, sink int, available int64) int64 {
	// If we reached sink, return the available flow
	if u == sink {
		return available
	}
	// Iterate over residual arcs, resuming from iter[u]
	for i := iter[u]; i < len(r.adj[u]); i++ {
		iter[u] = i
		a := r.adj[u][i]
		v := r.arcs[a].to
		if r.arcs[a].cap <= 0 || level[v] != level[u]+1 {
			continue
		}
		// Determine how much we can send: min(available, arc capacity)
		send := available
		if r.arcs[a].cap < send {
			send = r.arcs[a].cap
		}
		// Recurse to push from v toward sink
		pushed := dfsPush(r, level, iter, v, sink, send)
		if pushed > 0 {
			// On success, update the residual arc pair
			r.arcs[a].cap -= pushed
			r.arcs[a^1].cap += pushed

			return pushed
		}
	}
	iter[u] = len(r.adj[u])

	return 0
}
