package mincost

import (
	"context"
	"errors"
)

// Sentinel errors for the min-cost flow solver.
var (
	// ErrSourceNotFound is returned when the source vertex id is out of range.
	ErrSourceNotFound = errors.New("mincost: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex id is out of range.
	ErrSinkNotFound = errors.New("mincost: sink vertex not found")

	// ErrCostSize is returned when the cost slice does not cover every edge.
	ErrCostSize = errors.New("mincost: cost slice length must equal edge count")

	// ErrBadTarget is returned for a negative target flow value.
	ErrBadTarget = errors.New("mincost: target flow must be non-negative")
)

// Status reports the outcome of a Solve call.
type Status int

const (
	// Optimal: the full target value was routed at minimum cost.
	Optimal Status = iota

	// Infeasible: the residual network was exhausted before the target
	// value was reached; the partial assignment is discarded.
	Infeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Result carries the outcome of a Solve call.
//
// Flows is indexed by edge id and is only populated when Status == Optimal;
// Cost is Σ Flows[e]×costs[e] in the caller's scaled integer units.
type Result struct {
	Status Status
	Flows  []int64
	Cost   int64
}

// Options configures the solver.
//   - Ctx: cancellation / timeout; checked once per augmentation round.
//   - Verbose: if true, logs each augmentation.
type Options struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults:
// background context, no verbose logging.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills zero-valued fields with safe defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
