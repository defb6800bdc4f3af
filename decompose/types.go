package decompose

import "errors"

// Sentinel errors for the decomposition engine.
var (
	// ErrSourceNotFound is returned when the source vertex id is out of range.
	ErrSourceNotFound = errors.New("decompose: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex id is out of range.
	ErrSinkNotFound = errors.New("decompose: sink vertex not found")

	// ErrFlowSize is returned when the flow slice does not cover every edge.
	ErrFlowSize = errors.New("decompose: flow slice length must equal edge count")

	// ErrInconsistentFlow is returned when the peeling postcondition fails:
	// nonzero residual left on some edge, or the prefix/edge stacks did not
	// unwind cleanly. It signals a non-conservative assignment or a
	// flow-carrying cycle, never a recoverable input problem.
	ErrInconsistentFlow = errors.New("decompose: flow assignment not fully decomposable")
)

// Path is one elementary source→sink path of the decomposition: the vertex
// labels in traversal order (source and sink inclusive) and the positive
// flow amount the whole path carries.
type Path struct {
	// Flow is the amount routed along this path. Always > 0.
	Flow int64

	// Nodes holds the vertex labels from source to sink.
	Nodes []string
}
