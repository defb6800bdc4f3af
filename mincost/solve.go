package mincost

import (
	"fmt"
	"math"

	"github.com/flowkit/mcmf/core"
)

// arc is one direction of a residual edge pair. The reverse arc of arcs[i]
// is arcs[i^1]: forward arcs at even index 2·edgeID with cost +c, reverse
// arcs right after with cost −c.
type arc struct {
	to   int
	cap  int64
	cost int64
}

// Solve routes exactly `target` units of flow from `source` to `sink`
// through `g` at minimum total cost, using successive shortest paths.
//
// `costs` holds one pre-scaled integer cost per edge id (see package doc).
//
// Steps:
//  1. Normalize options and validate ids, cost slice, and target (O(1)/O(E)).
//  2. Build the private residual network with paired reverse arcs (O(V + E)).
//  3. While sent < target:
//     a. Check for cancellation (O(1)).
//     b. SPFA from source: cheapest residual distance and predecessor arc
//     per vertex (O(V·E) worst case, far less in practice).
//     c. If sink unreachable, stop: the instance is infeasible.
//     d. Bottleneck = min residual capacity along the predecessor chain,
//     clamped to target−sent; push it, updating both arcs of each pair.
//  4. Recover the per-edge assignment: capacity minus remaining forward
//     residual, and total cost as Σ flow×cost (O(E)).
//
// Complexity:
//
//	Time:   O(F·V·E) worst case, F = number of augmentations (≤ target).
//	Memory: O(V + E) for arcs, distances, predecessors, and the queue.
func Solve(g *core.Graph, costs []int64, source, sink int, target int64, opts Options) (Result, error) {
	// 1) Normalize options and validate inputs
	opts.normalize()
	ctx := opts.Ctx

	n := g.VertexCount()
	if source < 0 || source >= n {
		return Result{}, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return Result{}, ErrSinkNotFound
	}
	if len(costs) != g.EdgeCount() {
		return Result{}, ErrCostSize
	}
	if target < 0 {
		return Result{}, ErrBadTarget
	}
	// Degenerate instances: nothing to route.
	if target == 0 || source == sink {
		if source == sink && target > 0 {
			return Result{Status: Infeasible}, nil
		}

		return Result{Status: Optimal, Flows: make([]int64, g.EdgeCount())}, nil
	}

	// 2) Build the private residual network
	arcs, adj := buildResidual(g, costs)
	dist := make([]int64, n)
	prevArc := make([]int, n)
	inQueue := make([]bool, n)
	queue := make([]int, 0, n)

	// 3) Successive shortest paths until the target value is routed
	var sent int64
	for sent < target {
		// 3a) Cancellation check before each search
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// 3b) SPFA: cheapest residual path from source
		spfa(arcs, adj, source, dist, prevArc, inQueue, queue)
		if dist[sink] == math.MaxInt64 {
			// 3c) Sink unreachable: residual exhausted before target
			return Result{Status: Infeasible}, nil
		}

		// 3d) Bottleneck along the predecessor chain, clamped to what is left
		push := target - sent
		for v := sink; v != source; v = arcs[prevArc[v]^1].to {
			if arcs[prevArc[v]].cap < push {
				push = arcs[prevArc[v]].cap
			}
		}
		for v := sink; v != source; v = arcs[prevArc[v]^1].to {
			arcs[prevArc[v]].cap -= push
			arcs[prevArc[v]^1].cap += push
		}
		sent += push
		if opts.Verbose {
			fmt.Printf("mincost: pushed %d at distance %d, total %d\n", push, dist[sink], sent)
		}
	}

	// 4) Recover the per-edge assignment and its total cost
	flows := make([]int64, g.EdgeCount())
	var cost int64
	for e := 0; e < g.EdgeCount(); e++ {
		flows[e] = g.Edge(e).Capacity - arcs[2*e].cap
		cost += flows[e] * costs[e]
	}

	return Result{Status: Optimal, Flows: flows, Cost: cost}, nil
}

// buildResidual constructs the arc array and adjacency lists for g with the
// given scaled costs. Complexity: O(V + E).
func buildResidual(g *core.Graph, costs []int64) ([]arc, [][]int) {
	arcs := make([]arc, 2*g.EdgeCount())
	adj := make([][]int, g.VertexCount())
	for e := 0; e < g.EdgeCount(); e++ {
		ed := g.Edge(e)
		arcs[2*e] = arc{to: ed.To, cap: ed.Capacity, cost: costs[e]}
		arcs[2*e+1] = arc{to: ed.From, cost: -costs[e]}
		adj[ed.From] = append(adj[ed.From], 2*e)
		adj[ed.To] = append(adj[ed.To], 2*e+1)
	}

	return arcs, adj
}

// spfa runs a Bellman–Ford queue relaxation from source over positive-
// capacity arcs, filling dist and prevArc. Unreached vertices keep dist
// math.MaxInt64.
//
// Arcs are relaxed in index order and the queue is FIFO, so the resulting
// predecessor chains are deterministic for a fixed graph.
func spfa(arcs []arc, adj [][]int, source int, dist []int64, prevArc []int, inQueue []bool, queue []int) {
	for i := range dist {
		dist[i] = math.MaxInt64
		inQueue[i] = false
	}
	q := queue[:0]
	dist[source] = 0
	q = append(q, source)
	inQueue[source] = true

	for len(q) > 0 {
		u := q[0]
		q = q[1:]
		inQueue[u] = false
		for _, a := range adj[u] {
			if arcs[a].cap <= 0 {
				continue
			}
			v := arcs[a].to
			if nd := dist[u] + arcs[a].cost; nd < dist[v] {
				dist[v] = nd
				prevArc[v] = a
				if !inQueue[v] {
					q = append(q, v)
					inQueue[v] = true
				}
			}
		}
	}
}
