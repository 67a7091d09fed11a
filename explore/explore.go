package explore

import (
	"github.com/katalvlaran/petrinet/net"
)

// Run performs forward BFS exploration from n's initial marking, firing
// every transition at every frontier marking, and returns the reachable
// set of bitmasks.
//
// Returns ErrNetNil if n is nil, or ctx.Err() if the context is cancelled
// mid-search. A hit Limit is not an error: Result.Truncated reports it.
func Run(n *net.Net, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := map[uint64]struct{}{n.InitialMask: {}}
	queue := []uint64{n.InitialMask}
	truncated := false

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		m := queue[0]
		queue = queue[1:]

		for _, t := range n.Transitions {
			nm, ok := net.Fire(m, t)
			if !ok {
				continue
			}
			if _, seen := visited[nm]; seen {
				continue
			}
			if o.Limit > 0 && len(visited) >= o.Limit {
				truncated = true
				queue = nil
				break
			}
			visited[nm] = struct{}{}
			queue = append(queue, nm)
		}
	}

	return &Result{Reachable: visited, Truncated: truncated}, nil
}
