package ilp

import "errors"

// Oracle answers exact reachability membership queries. symbolic.Reachable
// satisfies this interface; it is declared locally so this package does
// not need to import the symbolic package's concrete BDD types.
type Oracle interface {
	Contains(mask uint64) bool
}

// runOracleLoop is the shared counterexample-guided search skeleton:
// solve the relaxation, extract a candidate marking from the binary
// place variables, confirm it against the oracle, and on refusal add a
// no-good cut before retrying. placeVars[i] is the model variable index
// holding place i's Mi.
//
// An infeasible relaxation is a completed search: every candidate was
// either cut or never existed, so the answer is a definite "none"
// (nil Solution, nil error). Truncation (a solve hitting its time or
// node cap, or the loop hitting MaxAttempts) keeps its sentinel so the
// caller can tell "proved absent" from "gave up".
func runOracleLoop(model *Model, placeVars []int, oracle Oracle, opts Options) (uint64, *Solution, error) {
	attempts := 0
	for {
		sol, err := Solve(model,
			WithContext(opts.Ctx),
			WithMaxNodes(opts.MaxNodes),
			WithSolveTimeout(opts.SolveTimeout),
		)
		if err != nil {
			if errors.Is(err, ErrInfeasible) {
				return 0, nil, nil
			}
			return 0, nil, err
		}

		mask := candidateMask(sol, placeVars)
		attempts++
		if opts.Logger != nil {
			opts.Logger.Attempt(attempts, mask)
		}

		if oracle.Contains(mask) {
			if opts.Logger != nil {
				opts.Logger.Solved(attempts, sol.Objective)
			}
			return mask, sol, nil
		}

		if opts.Logger != nil {
			opts.Logger.CutAdded(attempts, mask)
		}
		model.AddConstraint(noGoodCut(placeVars, mask))

		if opts.MaxAttempts > 0 && attempts >= opts.MaxAttempts {
			return 0, nil, ErrAttemptsExhausted
		}
	}
}

func candidateMask(sol *Solution, placeVars []int) uint64 {
	var mask uint64
	for i, idx := range placeVars {
		if sol.Values[idx] != 0 {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// noGoodCut builds Σ_{i∈S1} Mi − Σ_{i∈S0} Mi ≤ |S1|−1, excluding exactly
// the marking encoded by mask while leaving every other assignment
// feasible.
func noGoodCut(placeVars []int, mask uint64) Constraint {
	coeffs := make(map[int]float64, len(placeVars))
	s1 := 0
	for i, idx := range placeVars {
		if mask&(1<<uint(i)) != 0 {
			coeffs[idx] = 1
			s1++
		} else {
			coeffs[idx] = -1
		}
	}
	return Constraint{
		Label:  "no-good-cut",
		Coeffs: coeffs,
		Rel:    LE,
		RHS:    float64(s1 - 1),
	}
}
