// Package decompose re-expresses a solved per-edge flow assignment as an
// ordered list of elementary source→sink paths, each carrying one positive
// flow amount, that together reconstruct the assignment exactly.
//
// # Algorithm: depth-first greedy path peeling
//
// The engine copies the assignment into a private residual table and walks
// the graph depth-first from the source, keeping the current vertex prefix,
// the parallel stack of traversed edge instances, and a running bottleneck
// (the minimum residual seen along the prefix). At each vertex it tries
// every outgoing edge with positive residual, in the graph's fixed adjacency
// order — that ordering is the algorithm's only tie-break, so output is
// fully deterministic. Reaching the sink emits one path with the current
// bottleneck as its flow and subtracts that amount from every edge on the
// stack, not just the closing edge, keeping the whole prefix consistent
// with the amount actually claimed. The traversal then backtracks and keeps
// draining: all flow reachable from a prefix is consumed before the engine
// abandons that prefix.
//
// Every emission strictly decreases total residual flow, so termination is
// immediate; the number of emitted paths is at most the number of edges
// carrying flow.
//
// # Contract
//
// The input assignment must satisfy conservation (inflow = outflow at every
// vertex except source and sink), which the min-cost solver guarantees on
// an Optimal result. After the walk the engine verifies its own unwind:
// prefix back to [source], edge stack empty, residual zero on every edge.
// A violation means the assignment was not conservative — or contained a
// flow-carrying cycle, which a pure source→sink traversal can never drain —
// and is reported as ErrInconsistentFlow, an invariant violation distinct
// from input validation. The engine never returns a partial decomposition.
//
// The flow-carrying-cycle case is a known limitation inherited from the
// original behavior: a degenerate zero-cost cycle with spare capacity in the
// solver output would trip the postcondition rather than be silently
// dropped.
//
// # Errors
//
//	ErrSourceNotFound   - source id out of range.
//	ErrSinkNotFound     - sink id out of range.
//	ErrFlowSize         - len(flows) does not equal g.EdgeCount().
//	ErrInconsistentFlow - postcondition failed; assignment not decomposable.
//
// Complexity: O(E · P) time where P is the number of emitted paths (each
// emission rewrites residual along its whole path); O(V + E) memory for the
// residual copy and the two stacks.
package decompose
