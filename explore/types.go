package explore

import (
	"context"
	"errors"
)

// ErrNetNil is returned when a nil *net.Net is passed to Run.
var ErrNetNil = errors.New("explore: net is nil")

// Option configures a BFS exploration run.
type Option func(*Options)

// Options holds tunable parameters for Run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Limit caps the number of visited markings. Zero means unlimited.
	// Hitting the limit is a signaled truncation, not an error:
	// Result.Truncated is set and the partial set is returned.
	Limit int
}

// DefaultOptions returns background context and no limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Limit: 0}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit caps the visited set at n markings. n <= 0 disables the cap.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// Result is the outcome of a Bitmask BFS exploration.
type Result struct {
	// Reachable is the set of reachable markings as bitmasks.
	Reachable map[uint64]struct{}

	// Truncated is true when Limit was hit before the queue emptied.
	Truncated bool
}

// Count returns len(Reachable).
func (r *Result) Count() int { return len(r.Reachable) }

// Contains reports whether mask is in the reachable set.
func (r *Result) Contains(mask uint64) bool {
	_, ok := r.Reachable[mask]
	return ok
}
