package symbolic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/petrinet/explore"
	"github.com/katalvlaran/petrinet/net"
	"github.com/katalvlaran/petrinet/symbolic"
)

// TestCompute_DisconnectedSelfLoops verifies two independent single-place
// self-loop components: firing never changes the marking, so the reachable
// set is the initial marking alone and the fixed point settles in a single
// round.
func TestCompute_DisconnectedSelfLoops(t *testing.T) {
	places := map[string]int{"a": 1, "b": 1}
	transitions := map[string]struct{}{"ta": {}, "tb": {}}
	arcs := []net.Arc{
		{Source: "a", Target: "ta"}, {Source: "ta", Target: "a"},
		{Source: "b", Target: "tb"}, {Source: "tb", Target: "b"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	r, err := symbolic.Compute(n)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), r.Count())
	assert.Equal(t, 1, r.Iterations)
	assert.True(t, r.Contains(n.InitialMask))
}

// TestCompute_DisconnectedComponents_CountIsProduct verifies the reachable
// count of a net with two independent consume-one-token components is the
// product of the per-component counts.
func TestCompute_DisconnectedComponents_CountIsProduct(t *testing.T) {
	places := map[string]int{"a1": 1, "a2": 0, "b1": 1, "b2": 0}
	transitions := map[string]struct{}{"ta": {}, "tb": {}}
	arcs := []net.Arc{
		{Source: "a1", Target: "ta"}, {Source: "ta", Target: "a2"},
		{Source: "b1", Target: "tb"}, {Source: "tb", Target: "b2"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	r, err := symbolic.Compute(n)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), r.Count())

	bfsResult, err := explore.Run(n)
	assert.NoError(t, err)
	assert.Equal(t, 4, bfsResult.Count())
}

// TestContains_AgreesWithBFSOverFullSpace sweeps every marking of a small
// diamond net and checks the oracle accepts exactly the BFS-reachable ones:
// membership for every reachable mask, rejection for every mask in the
// complement.
func TestContains_AgreesWithBFSOverFullSpace(t *testing.T) {
	places := map[string]int{"p1": 1, "p2": 0, "p3": 0, "p4": 0}
	transitions := map[string]struct{}{"ta": {}, "tb": {}, "tc": {}, "td": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "ta"}, {Source: "ta", Target: "p2"},
		{Source: "p1", Target: "tb"}, {Source: "tb", Target: "p3"},
		{Source: "p2", Target: "tc"}, {Source: "tc", Target: "p4"},
		{Source: "p3", Target: "td"}, {Source: "td", Target: "p4"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	bfsResult, err := explore.Run(n)
	assert.NoError(t, err)
	r, err := symbolic.Compute(n)
	assert.NoError(t, err)

	total := uint64(1) << uint(n.NumPlaces())
	want := make(map[uint64]bool, total)
	got := make(map[uint64]bool, total)
	for mask := uint64(0); mask < total; mask++ {
		want[mask] = bfsResult.Contains(mask)
		got[mask] = r.Contains(mask)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("oracle membership disagrees with BFS (-bfs +bdd):\n%s", diff)
	}
}
