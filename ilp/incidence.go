package ilp

import "github.com/katalvlaran/petrinet/net"

// consumedMark is the incidence entry for a place consumed (and not
// replaced) by a transition: C[p,t] = -1.
const consumedMark = -1

// producedMark is the incidence entry for a place produced (pure output,
// not also consumed) by a transition: C[p,t] = +1.
const producedMark = +1

// IncidenceMatrix is the |P|x|T| state-equation coefficient matrix:
// C[p][t] = +1 if p ∈ post(t)∖pre(t), -1 if p ∈ pre(t)∖post(t), 0
// otherwise (loop places and places untouched by t contribute 0).
type IncidenceMatrix struct {
	Rows int
	Cols int
	C    [][]int
}

// BuildIncidenceMatrix constructs the state-equation matrix for n,
// deterministically ordered by n's place and transition indices.
func BuildIncidenceMatrix(n *net.Net) *IncidenceMatrix {
	np, nt := n.NumPlaces(), n.NumTransitions()
	c := make([][]int, np)
	for p := range c {
		c[p] = make([]int, nt)
	}
	for j, t := range n.Transitions {
		for i := 0; i < np; i++ {
			bit := uint64(1) << uint(i)
			consumed := t.PreMask&bit != 0
			produced := t.PostMask&bit != 0
			switch {
			case produced && !consumed:
				c[i][j] = producedMark
			case consumed && !produced:
				c[i][j] = consumedMark
			default:
				c[i][j] = 0
			}
		}
	}
	return &IncidenceMatrix{Rows: np, Cols: nt, C: c}
}

// At returns C[p][t].
func (m *IncidenceMatrix) At(p, t int) int { return m.C[p][t] }
