// Package mincost computes a minimum-cost flow of a prescribed value on a
// frozen *core.Graph using successive shortest paths: repeatedly find the
// cheapest residual source→sink path with a Bellman–Ford queue search (SPFA)
// and saturate it, until exactly the requested amount has been sent.
//
// Costs are supplied as pre-scaled integers, one per edge id: callers encode
// real costs as cost × scale factor truncated to int64, and decode the
// reported total by dividing by the same factor. Negative arc costs are
// handled by the SPFA search; graphs containing negative-cost directed
// cycles are outside the solver's contract (the search would not terminate),
// matching the upstream solver this package stands in for.
//
// # API
//
//	res, err := mincost.Solve(g, costs, source, sink, target, mincost.DefaultOptions())
//	if err != nil { ... }
//	if res.Status != mincost.Optimal { ... } // infeasible: residual exhausted early
//	_ = res.Flows // per-edge assignment, indexed by edge id
//	_ = res.Cost  // Σ flow×cost in scaled units
//
// On Optimal the returned assignment satisfies conservation: inflow equals
// outflow at every vertex except source (net −target) and sink (net +target),
// and 0 ≤ Flows[e] ≤ capacity(e) for every edge.
//
// Determinism: arcs are relaxed in index order and the queue is FIFO, so
// repeated calls on the same inputs return identical assignments.
//
// # Errors
//
//	ErrSourceNotFound - source id out of range.
//	ErrSinkNotFound   - sink id out of range.
//	ErrCostSize       - len(costs) does not equal g.EdgeCount().
//	ErrBadTarget      - negative target flow value.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
//
// Infeasibility is not an error: it is reported through Result.Status so the
// caller can distinguish a failed contract from invalid input.
package mincost
