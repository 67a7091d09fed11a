package ilp

import (
	"github.com/katalvlaran/petrinet/net"
)

// DeadlockResult is the witness returned by FindDeadlock: a reachable
// marking with no enabled transition, plus the firing vector the state
// equation used to justify it.
type DeadlockResult struct {
	Mask         uint64
	Marking      []int
	FiringVector []int
}

// FindDeadlock searches for a reachable marking with no enabled
// transition. It returns (nil, ErrNoDeadlockPossible) when a transition
// has an empty pre-set (a definite answer, not a search failure) and
// (nil, nil) when the search completes without a witness: no reachable
// deadlock admits a firing vector within FiringBound. A truncated search instead surfaces ErrSolveTimeout,
// ErrNodeLimit, or ErrAttemptsExhausted, so "proved absent" and "gave
// up" stay distinguishable.
func FindDeadlock(n *net.Net, oracle Oracle, opts ...Option) (*DeadlockResult, error) {
	o := resolve(opts...)
	np, nt := n.NumPlaces(), n.NumTransitions()

	// A transition with no input places can never be starved; its
	// starvation constraint would read 0 <= -1. Deadlock search treats
	// such a net as deadlock-free and answers without building a model.
	for _, t := range n.Transitions {
		if len(t.Pre) == 0 {
			return nil, ErrNoDeadlockPossible
		}
	}

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
	zVars := make([]int, nt)
	for j := range zVars {
		zVars[j] = -1
	}
	for j, t := range n.Transitions {
		if t.PureOutputMask() != 0 {
			zVars[j] = len(model.Vars)
			model.Vars = append(model.Vars, Var{Name: "z", Kind: Binary, Lo: 0, Hi: 1})
		}
	}

	for j, t := range n.Transitions {
		k := len(t.Pre)
		pureOut := t.PureOutputMask()
		preCoeffs := make(map[int]float64, k)
		for _, p := range t.Pre {
			preCoeffs[placeVars[p]] = 1
		}
		if pureOut == 0 {
			model.AddConstraint(Constraint{
				Label:  "starvation-only",
				Coeffs: preCoeffs,
				Rel:    LE,
				RHS:    float64(k - 1),
			})
			continue
		}

		starveCoeffs := make(map[int]float64, len(preCoeffs)+1)
		for idx, c := range preCoeffs {
			starveCoeffs[idx] = c
		}
		starveCoeffs[zVars[j]] = -float64(k)
		model.AddConstraint(Constraint{
			Label:  "starvation-branch",
			Coeffs: starveCoeffs,
			Rel:    LE,
			RHS:    float64(k - 1),
		})

		blockCoeffs := make(map[int]float64)
		for i := 0; i < np; i++ {
			if pureOut&(1<<uint(i)) != 0 {
				blockCoeffs[placeVars[i]] = 1
			}
		}
		blockCoeffs[zVars[j]] = -1
		model.AddConstraint(Constraint{
			Label:  "blockage-branch",
			Coeffs: blockCoeffs,
			Rel:    GE,
			RHS:    0,
		})
	}

	addStateEquation(model, n, placeVars, sigmaVars)

	model.Obj.Maximize = false
	model.Obj.Coeffs = make(map[int]float64, nt)
	for j := range sigmaVars {
		model.Obj.Coeffs[sigmaVars[j]] = 1
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

	return &DeadlockResult{
		Mask:         mask,
		Marking:      net.MaskToTuple(mask, np),
		FiringVector: firing,
	}, nil
}

// addStateEquation adds, for each place i, Mi - Σ_j C[i,j]·σj = M0(pi).
func addStateEquation(model *Model, n *net.Net, placeVars, sigmaVars []int) {
	inc := BuildIncidenceMatrix(n)
	for i := 0; i < n.NumPlaces(); i++ {
		coeffs := map[int]float64{placeVars[i]: 1}
		for j := range sigmaVars {
			if c := inc.At(i, j); c != 0 {
				coeffs[sigmaVars[j]] = -float64(c)
			}
		}
		m0 := 0.0
		if n.InitialMask&(1<<uint(i)) != 0 {
			m0 = 1
		}
		model.AddConstraint(Constraint{
			Label:  "state-equation",
			Coeffs: coeffs,
			Rel:    EQ,
			RHS:    m0,
		})
	}
}
