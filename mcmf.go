package mcmf

import (
	"errors"
	"fmt"

	"github.com/flowkit/mcmf/core"
	"github.com/flowkit/mcmf/decompose"
	"github.com/flowkit/mcmf/flow"
	"github.com/flowkit/mcmf/mincost"
)

// CostScale is the shared fixed-point factor for cost arithmetic: edge costs
// are encoded as cost×CostScale truncated to int64, and the solved total is
// decoded by dividing by the same constant. Sub-1/CostScale cost precision
// is lost by design.
const CostScale = 1000

// Sentinel errors for the solve pipeline.
var (
	// ErrUnknownVertex is returned by Solve for a label that was never used
	// as an edge endpoint.
	ErrUnknownVertex = errors.New("mcmf: vertex label never used as an edge endpoint")

	// ErrInfeasible is returned when the min-cost solver reports a
	// non-optimal status for the max-flow balance. It should never occur for
	// a correctly computed max flow, but it is checked, not assumed.
	ErrInfeasible = errors.New("mcmf: min-cost flow is not optimal for the max-flow value")
)

// Builder accumulates a named flow network and solves it. Construct with
// New; it is not safe for concurrent use.
type Builder struct {
	b *core.Builder
	g *core.Graph // set on first Solve; the network is frozen from then on
}

// New returns an empty network builder.
func New() *Builder {
	return &Builder{b: core.NewBuilder()}
}

// AddEdge adds a directed edge from→to with the given capacity and per-unit
// cost. Capacity is coerced to an integer by truncation and must end up
// strictly positive (core.ErrNonPositiveCapacity otherwise); repeated
// endpoint pairs create distinct parallel edge instances. Cost may have any
// sign; precision below 1/CostScale is dropped at solve time.
//
// AddEdge fails with core.ErrFrozen once Solve has been called.
func (b *Builder) AddEdge(from, to string, capacity, cost float64) error {
	_, err := b.b.AddEdge(from, to, int64(capacity), cost)

	return err
}

// Solution is the assembled result of one Solve call.
type Solution struct {
	// MaxFlow is the maximum total amount routable from source to sink.
	MaxFlow float64

	// TotalCost is Σ flow×cost over all edges, decoded from the scaled
	// integer optimum (exact to 1/CostScale).
	TotalCost float64

	// Paths lists the decomposed source→sink paths in peeling order. Their
	// flow amounts sum to MaxFlow, and per edge to the solved assignment.
	Paths []decompose.Path
}

// Solve freezes the network on first use and runs the full pipeline:
// max-flow value (Dinic), min-cost assignment of that value (successive
// shortest paths with balance ±maxFlow at source/sink), then exact path
// decomposition. Repeated calls on the same Builder reuse the frozen graph
// and return identical Solutions.
//
// Both labels must have been introduced via AddEdge (ErrUnknownVertex
// otherwise — validated before any solver runs).
//
// Fixed boundary policies:
//   - source == sink: zero flow, zero cost, no paths, no error.
//   - sink unreachable: MaxFlow 0, TotalCost 0, empty path list.
//
// A non-optimal min-cost status (ErrInfeasible) or a failed decomposition
// postcondition (decompose.ErrInconsistentFlow) is an internal invariant
// violation and aborts the solve; a partial Solution is never returned.
func (b *Builder) Solve(source, sink string) (*Solution, error) {
	if b.g == nil {
		b.g = b.b.Finalize()
	}
	src, ok := b.g.VertexID(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, source)
	}
	dst, ok := b.g.VertexID(sink)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, sink)
	}
	// Degenerate instance: nothing to route, nothing to decompose.
	if src == dst {
		return &Solution{}, nil
	}

	value, err := flow.Dinic(b.g, src, dst, flow.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if value == 0 {
		return &Solution{}, nil
	}

	res, err := mincost.Solve(b.g, b.scaledCosts(), src, dst, value, mincost.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if res.Status != mincost.Optimal {
		return nil, fmt.Errorf("%w: %s", ErrInfeasible, res.Status)
	}

	paths, err := decompose.Paths(b.g, res.Flows, src, dst)
	if err != nil {
		return nil, err
	}

	return &Solution{
		MaxFlow:   float64(value),
		TotalCost: float64(res.Cost) / CostScale,
		Paths:     paths,
	}, nil
}

// scaledCosts encodes the per-edge real costs as CostScale-scaled integers,
// truncated, indexed by edge id.
func (b *Builder) scaledCosts() []int64 {
	costs := make([]int64, b.g.EdgeCount())
	for e := range costs {
		costs[e] = int64(b.g.Edge(e).Cost * CostScale)
	}

	return costs
}
