package flow

import (
	"context"
	"errors"
)

// Sentinel errors for the max-flow solver.
var (
	// ErrSourceNotFound is returned when the source vertex id is out of range.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex id is out of range.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")
)

// Options configures the Dinic solver.
//   - Ctx: cancellation / timeout; checked once per BFS round and per push.
//   - Verbose: if true, logs each blocking-flow push.
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
