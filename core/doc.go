// Package core defines the Builder and the frozen Graph that every solver in
// this module operates on: a directed multigraph whose vertices are created
// from string labels and whose edges carry an integer capacity and a real
// cost.
//
// # Model
//
//   - Vertices are identified internally by contiguous integer ids, assigned
//     in first-seen order. The Builder maintains the label↔id bijection as a
//     label arena (id-indexed slice) plus a label→id lookup map; re-adding an
//     existing label resolves to the same id and never creates a duplicate.
//   - Edges are directed (tail, head) instances identified by contiguous
//     integer ids. Parallel edges between the same endpoints are distinct
//     instances. Capacity must be a positive integer; cost may have any sign.
//   - Finalize produces an immutable Graph. Per-vertex out-adjacency lists
//     hold edge ids in insertion order; this fixed ordering is the
//     deterministic tie-break every downstream algorithm relies on, so two
//     identical build sequences always yield identical solver output.
//
// # API
//
//	b := core.NewBuilder()
//	b.AddEdge("a", "b", 10, 200)
//	b.AddEdge("a", "b", 5, 50) // parallel instance, own edge id
//	g := b.Finalize()
//	src, _ := g.VertexID("a")
//
// # Errors
//
//	ErrNonPositiveCapacity - capacity ≤ 0 passed to AddEdge.
//	ErrEmptyLabel          - empty string used as a vertex label.
//	ErrFrozen              - mutation attempted after Finalize.
package core
