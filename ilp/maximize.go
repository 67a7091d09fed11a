package ilp

import (
	"github.com/katalvlaran/petrinet/net"
)

// MaximizeResult is the best reachable marking found for a weighted
// occupancy objective, plus its score.
type MaximizeResult struct {
	Mask         uint64
	Marking      []int
	FiringVector []int
	Objective    int
}

// Maximize searches for the reachable marking maximizing Σ weights[i]*Mi.
// weights may contain negative entries. Because the
// ILP enumerates candidates best-first and no-good cuts never raise the
// relaxation bound, the first oracle-confirmed candidate is guaranteed
// optimal among reachable markings that admit a firing vector within
// FiringBound. Returns (nil, nil) when no
// reachable candidate exists at all; a truncated search instead surfaces
// ErrSolveTimeout, ErrNodeLimit, or ErrAttemptsExhausted.
func Maximize(n *net.Net, oracle Oracle, weights []int, opts ...Option) (*MaximizeResult, error) {
	o := resolve(opts...)
	np, nt := n.NumPlaces(), n.NumTransitions()

	firingBound := o.FiringBound
	if firingBound == 0 {
		firingBound = defaultFiringBound(np, nt)
	}

	model := &Model{}
	placeVars := make([]int, np)
	for i := 0; i < np; i++ {
		placeVars[i] = len(model.Vars)
		model.Vars = append(model.Vars, Var{Name: "M", Kind: Binary, Lo: 0, Hi: 1})
	}
	sigmaVars := make([]int, nt)
	for j := 0; j < nt; j++ {
		sigmaVars[j] = len(model.Vars)
		model.Vars = append(model.Vars, Var{Name: "sigma", Kind: Integer, Lo: 0, Hi: firingBound})
	}

	addStateEquation(model, n, placeVars, sigmaVars)

	model.Obj.Maximize = true
	model.Obj.Coeffs = make(map[int]float64, np)
	for i := 0; i < np; i++ {
		if w := weights[i]; w != 0 {
			model.Obj.Coeffs[placeVars[i]] = float64(w)
		}
	}

	mask, sol, err := runOracleLoop(model, placeVars, oracle, o)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, nil
	}

	firing := make([]int, nt)
	for j, idx := range sigmaVars {
		firing[j] = sol.Values[idx]
	}

	return &MaximizeResult{
		Mask:         mask,
		Marking:      net.MaskToTuple(mask, np),
		FiringVector: firing,
		Objective:    int(sol.Objective),
	}, nil
}
