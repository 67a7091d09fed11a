package ilp

import (
	"context"
	"errors"
	"time"
)

// ErrInfeasible is returned by Solve when no assignment satisfies every
// constraint.
var ErrInfeasible = errors.New("ilp: model is infeasible")

// ErrSolveTimeout is returned by Solve when SolveTimeout elapses before
// the branch-and-bound search completes. Unlike ErrInfeasible it is an
// uncertain outcome: the model may still have a solution.
var ErrSolveTimeout = errors.New("ilp: solve exceeded its time limit")

// ErrNodeLimit is returned by Solve when the MaxNodes cap is hit before
// the search completes. Like ErrSolveTimeout, it is uncertain.
var ErrNodeLimit = errors.New("ilp: solve exceeded its node limit")

// ErrAttemptsExhausted is returned by FindDeadlock and Maximize when the
// outer oracle loop hits MaxAttempts with candidates still pending. A nil
// error with a nil result means the search space was provably exhausted;
// ErrAttemptsExhausted means it was not.
var ErrAttemptsExhausted = errors.New("ilp: oracle loop exceeded its attempt limit")

// ErrNoDeadlockPossible signals a structural short-circuit: the net has a
// transition with an empty pre-set, which no input starvation can
// disable, and FindDeadlock answers "no deadlock" for such a net without
// building a model. It is not an error condition for callers —
// FindDeadlock returns it alongside a nil result so the caller can
// distinguish "proved absent" from "search exhausted".
var ErrNoDeadlockPossible = errors.New("ilp: net has a transition with an empty pre-set, no deadlock possible")

// VarKind distinguishes a 0/1 decision variable from a bounded
// non-negative integer one.
type VarKind uint8

const (
	// Binary variables range over {0,1}.
	Binary VarKind = iota
	// Integer variables range over [Lo,Hi], both inclusive.
	Integer
)

// Var declares one decision variable of the model.
type Var struct {
	Name string
	Kind VarKind
	Lo   int
	Hi   int
}

// Relation is the comparison operator of a linear constraint.
type Relation uint8

const (
	LE Relation = iota // <=
	GE                 // >=
	EQ                 // ==
)

// Constraint is a single linear constraint Σ Coeffs[i]*x[i] Rel RHS.
type Constraint struct {
	Label  string
	Coeffs map[int]float64
	Rel    Relation
	RHS    float64
}

// Objective is a linear objective function over the model's variables.
type Objective struct {
	Coeffs   map[int]float64
	Maximize bool
}

// Model is a small mixed-integer linear program: the shared vocabulary
// FindDeadlock and Maximize each compile their task into.
type Model struct {
	Vars        []Var
	Constraints []Constraint
	Obj         Objective
}

// AddConstraint appends a constraint and returns its index.
func (m *Model) AddConstraint(c Constraint) int {
	m.Constraints = append(m.Constraints, c)
	return len(m.Constraints) - 1
}

// Solution is the outcome of a successful Solve: assigned integer values
// for every variable, in declaration order, plus the realized objective.
type Solution struct {
	Values    []int
	Objective float64
}

// Options tunes the branch-and-bound search and the outer oracle loop.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxNodes caps the number of branch-and-bound nodes explored per
	// Solve call. Zero means unlimited.
	MaxNodes int

	// SolveTimeout bounds the wall-clock time of a single Solve call.
	// Zero means unbounded.
	SolveTimeout time.Duration

	// MaxAttempts caps the number of outer oracle-loop iterations (cuts
	// injected) before giving up and returning a truncated result. Zero
	// means unlimited.
	MaxAttempts int

	// FiringBound is the upper bound assigned to every σ (firing count)
	// variable in a generated model. The state equation only needs a
	// non-negative integer solution to exist, not a tight one; this
	// bound keeps the branch-and-bound search space finite. Zero selects
	// a default proportional to the net size (see defaultFiringBound).
	FiringBound int

	// Logger receives per-iteration progress, if non-nil.
	Logger Logger
}

// Logger receives coarse progress events from the outer oracle loop.
type Logger interface {
	Attempt(n int, candidate uint64)
	CutAdded(n int, candidate uint64)
	Solved(n int, objective float64)
}

// DefaultOptions returns background context, no caps, no logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option configures Options.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes caps branch-and-bound nodes per solve. n <= 0 disables the cap.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// WithSolveTimeout bounds the wall-clock time of a single Solve call.
func WithSolveTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.SolveTimeout = d
		}
	}
}

// WithMaxAttempts caps the outer oracle-loop iteration count.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

// WithFiringBound overrides the default per-transition firing-count bound.
func WithFiringBound(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.FiringBound = n
		}
	}
}

// WithLogger attaches a progress logger to the outer oracle loop.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func defaultFiringBound(numPlaces, numTransitions int) int {
	b := 4*numPlaces + 4*numTransitions
	if b < 8 {
		b = 8
	}
	return b
}
