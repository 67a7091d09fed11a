package symbolic

import (
	"time"

	"github.com/katalvlaran/petrinet/net"
)

// varX returns the current-state BDD variable index for place i.
func varX(i int) int { return 2 * i }

// varY returns the next-state BDD variable index for place i.
func varY(i int) int { return 2*i + 1 }

// Compute builds the interleaved-variable transition relation for n and
// iterates the forward image to a fixed point, returning the exact
// reachable set as a Reachable oracle.
//
// Returns ErrNetNil if n is nil, ctx.Err() on cancellation, or
// ErrMaxIterations/ErrMaxNodes when a configured cap is hit and
// NoErrorOnLimit is false.
func Compute(n *net.Net, opts ...Option) (*Reachable, error) {
	if n == nil {
		return nil, ErrNetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	np := n.NumPlaces()
	mgr := NewManager(2 * np)

	xVars := make([]int, np)
	yVars := make([]int, np)
	yToX := make(map[int]int, np)
	for i := 0; i < np; i++ {
		xVars[i] = varX(i)
		yVars[i] = varY(i)
		yToX[varY(i)] = varX(i)
	}

	init := buildInit(mgr, n, xVars)
	tr := buildTransitionRelation(mgr, n, np)

	r := init
	iterations := 0
	truncated := false

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if o.MaxNodes > 0 && mgr.Size() > o.MaxNodes {
			if o.NoErrorOnLimit {
				truncated = true
				break
			}
			return nil, ErrMaxNodes
		}

		image := mgr.And(r, tr)
		nextY := mgr.Exist(xVars, image)
		nextX := mgr.Rename(nextY, yToX)
		next := mgr.Or(r, nextX)

		iterations++
		if o.Logger != nil {
			o.Logger.Iteration(iterations, mgr.Size())
		}

		if mgr.Equal(next, r) {
			r = next
			break
		}
		r = next

		if o.MaxIterations > 0 && iterations >= o.MaxIterations {
			if o.NoErrorOnLimit {
				truncated = true
				break
			}
			return nil, ErrMaxIterations
		}
	}

	if o.Logger != nil {
		o.Logger.Converged(iterations, mgr.Size())
	}

	return &Reachable{
		mgr:        mgr,
		r:          r,
		xVars:      xVars,
		Iterations: iterations,
		Truncated:  truncated,
		Elapsed:    time.Since(start),
	}, nil
}

// buildInit returns the BDD for the single point M0: the conjunction of
// xi for every initially-marked place and NOT xi for every unmarked one.
func buildInit(mgr *Manager, n *net.Net, xVars []int) Ref {
	result := mgr.True()
	for i := 0; i < n.NumPlaces(); i++ {
		lit := mgr.Var(xVars[i])
		if n.InitialMask&(1<<uint(i)) == 0 {
			lit = mgr.Not(lit)
		}
		result = mgr.And(result, lit)
	}
	return result
}

// buildTransitionRelation returns Tr(x,y) = OR over transitions t of
// Tr_t(x,y): t's firing guard (pre-set marked, AND, for every pure-output
// place, not already marked — the 1-safety guard that must always be
// present) conjoined with the frame+effect clause relating y to x under t.
func buildTransitionRelation(mgr *Manager, n *net.Net, np int) Ref {
	tr := mgr.False()
	for _, t := range n.Transitions {
		tr = mgr.Or(tr, buildTransitionClause(mgr, t, np))
	}
	return tr
}

func buildTransitionClause(mgr *Manager, t net.Transition, np int) Ref {
	guard := mgr.True()
	for i := 0; i < np; i++ {
		bit := uint64(1) << uint(i)
		if t.PreMask&bit != 0 {
			guard = mgr.And(guard, mgr.Var(varX(i)))
		}
	}
	// Forbid firing into an already-occupied place that this transition
	// only produces into, never consumes from (1-safety).
	pureOut := t.PureOutputMask()
	for i := 0; i < np; i++ {
		bit := uint64(1) << uint(i)
		if pureOut&bit != 0 {
			guard = mgr.And(guard, mgr.Not(mgr.Var(varX(i))))
		}
	}

	effect := mgr.True()
	for i := 0; i < np; i++ {
		bit := uint64(1) << uint(i)
		consumed := t.PreMask&bit != 0
		produced := t.PostMask&bit != 0
		x := mgr.Var(varX(i))
		y := mgr.Var(varY(i))

		var clause Ref
		switch {
		case consumed && produced:
			// loop place: token is consumed and replaced, y_i == x_i.
			clause = mgr.Not(mgr.Xor(x, y))
		case consumed && !produced:
			// consumed, not replaced: y_i must be 0.
			clause = mgr.Not(y)
		case !consumed && produced:
			// produced, not previously consumed here: y_i must be 1.
			clause = y
		default:
			// frame: place untouched by this transition, y_i == x_i.
			clause = mgr.Not(mgr.Xor(x, y))
		}
		effect = mgr.And(effect, clause)
	}

	return mgr.And(guard, effect)
}
