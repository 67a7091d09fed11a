package symbolic

import (
	"context"
	"errors"
	"time"
)

// ErrNetNil is returned when a nil *net.Net is passed to Compute.
var ErrNetNil = errors.New("symbolic: net is nil")

// ErrMaxIterations is returned when the fixed-point loop exceeds
// MaxIterations without converging and NoErrorOnLimit is false.
var ErrMaxIterations = errors.New("symbolic: fixed point did not converge within MaxIterations")

// ErrMaxNodes is returned when the manager's node table exceeds MaxNodes
// and NoErrorOnLimit is false.
var ErrMaxNodes = errors.New("symbolic: BDD node count exceeded MaxNodes")

// Option configures a Compute run.
type Option func(*Options)

// Options holds tunable parameters for Compute.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxIterations caps the number of Image/fixed-point rounds. Zero
	// means unlimited.
	MaxIterations int

	// MaxNodes caps the BDD manager's node table size. Zero means
	// unlimited.
	MaxNodes int

	// NoErrorOnLimit, when true, turns a hit MaxIterations/MaxNodes cap
	// into a truncated (non-error) Reachable result instead of an error,
	// mirroring explore.Options.Limit's truncation semantics.
	NoErrorOnLimit bool

	// Logger receives per-iteration progress, if non-nil.
	Logger Logger
}

// DefaultOptions returns background context, no caps, errors on limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps the fixed-point loop at n rounds. n <= 0 disables
// the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithMaxNodes caps the BDD node table at n nodes. n <= 0 disables the cap.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// WithNoErrorOnLimit turns a hit cap into truncation instead of an error.
func WithNoErrorOnLimit() Option {
	return func(o *Options) {
		o.NoErrorOnLimit = true
	}
}

// WithLogger attaches a progress logger to the fixed-point computation.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Logger receives coarse progress events from Compute. It is a minimal
// seam so callers can plug in a structured logger (see package telemetry)
// without this package importing any particular logging library.
type Logger interface {
	Iteration(n int, nodes int)
	Converged(n int, nodes int)
}

// Reachable is the result of a symbolic reachability computation: an
// oracle over the exact set of reachable markings, plus iteration-count
// and node-count diagnostics for the fixed-point computation that built it.
type Reachable struct {
	mgr   *Manager
	r     Ref
	xVars []int

	// Iterations is the number of fixed-point rounds performed.
	Iterations int

	// Truncated is true if MaxIterations or MaxNodes was hit with
	// NoErrorOnLimit set.
	Truncated bool

	// Elapsed is the wall-clock duration of the fixed-point computation,
	// relation construction included.
	Elapsed time.Duration
}

// Contains reports whether marking mask is in the computed reachable set,
// via BDD constant substitution (Let) followed by an IsTrue check.
func (r *Reachable) Contains(mask uint64) bool {
	assignment := make(map[int]bool, len(r.xVars))
	for i, v := range r.xVars {
		assignment[v] = mask&(1<<uint(i)) != 0
	}
	res := r.mgr.Let(assignment, r.r)
	return r.mgr.IsTrue(res)
}

// Count returns the exact number of reachable markings via SatCount over
// the x variables.
func (r *Reachable) Count() int64 {
	return r.mgr.SatCount(r.r, r.xVars).Int64()
}

// NodeCount reports the peak BDD node table size reached while computing
// this reachable set.
func (r *Reachable) NodeCount() int {
	return r.mgr.Size()
}

// Manager exposes the underlying BDD manager, e.g. for the ILP Oracle
// Loop to run further Let/IsTrue membership queries against Ref directly.
func (r *Reachable) Manager() *Manager { return r.mgr }

// Ref exposes the raw BDD handle for the reachable set.
func (r *Reachable) Ref() Ref { return r.r }

// XVars returns the current-state variable indices in place-index order,
// the ordering SatCount and Contains rely on.
func (r *Reachable) XVars() []int {
	out := make([]int, len(r.xVars))
	copy(out, r.xVars)
	return out
}
