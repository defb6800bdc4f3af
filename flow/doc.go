// Package flow computes the maximum flow between a source and a sink of a
// frozen *core.Graph using Dinic's algorithm (level graph + blocking flows).
//
// The solver operates on an arc-indexed residual network with paired reverse
// arcs, so parallel edge instances keep their identity and the traversal
// order is fully determined by the graph's fixed adjacency ordering: repeated
// runs on the same graph always return the same value.
//
// # API
//
// Options configures the solver:
//
//	type Options struct {
//	    Ctx     context.Context // for cancellation / timeouts
//	    Verbose bool            // log each blocking-flow push
//	}
//
// Use DefaultOptions() to obtain production-safe defaults, then:
//
//	value, err := flow.Dinic(g, source, sink, flow.DefaultOptions())
//
// Only the flow value is returned; a per-edge assignment of that value is the
// job of the min-cost pass (package mincost), which recomputes it under cost
// optimality.
//
// # Errors
//
//	ErrSourceNotFound - source id out of range for the graph.
//	ErrSinkNotFound   - sink id out of range for the graph.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
//
// Complexity: O(E·V²) worst case, O(E·√V) on unit-capacity networks;
// memory O(V + E) for the residual arcs and level/iterator maps.
package flow
