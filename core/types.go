package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNonPositiveCapacity indicates an AddEdge call with capacity ≤ 0.
	ErrNonPositiveCapacity = errors.New("core: edge capacity must be positive")

	// ErrEmptyLabel indicates an empty string was supplied as a vertex label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrFrozen indicates a mutation was attempted after Finalize.
	ErrFrozen = errors.New("core: builder is frozen")
)

// Edge is a directed edge instance of a frozen Graph.
//
// From and To are vertex ids; Capacity is the positive integer capacity the
// builder enforced; Cost is the per-unit real cost (any sign).
type Edge struct {
	// From is the tail vertex id.
	From int

	// To is the head vertex id.
	To int

	// Capacity is the edge capacity. Always > 0 in a finalized Graph.
	Capacity int64

	// Cost is the per-unit cost of routing flow across this edge.
	Cost float64
}
