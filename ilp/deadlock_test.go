package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/petrinet/ilp"
	"github.com/katalvlaran/petrinet/net"
	"github.com/katalvlaran/petrinet/symbolic"
)

func buildDeadlockChain(t *testing.T) *net.Net {
	t.Helper()
	places := map[string]int{"p1": 1, "p2": 0, "p3": 0}
	transitions := map[string]struct{}{"t1": {}, "t2": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"},
		{Source: "t1", Target: "p2"},
		{Source: "p2", Target: "t2"},
		{Source: "t2", Target: "p3"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)
	return n
}

// TestFindDeadlock_ChainEndsInDeadlock verifies the terminal marking of a
// linear chain (nothing consumes p3) is found, with a consistent firing
// vector.
func TestFindDeadlock_ChainEndsInDeadlock(t *testing.T) {
	n := buildDeadlockChain(t)
	oracle, err := symbolic.Compute(n)
	assert.NoError(t, err)

	result, err := ilp.FindDeadlock(n, oracle)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, []int{0, 0, 1}, result.Marking)
	assert.Equal(t, []int{1, 1}, result.FiringVector)
}

// TestFindDeadlock_UnconditionallyEnabledTransition verifies the
// structural short-circuit: a transition with no pre-set and no
// pure-output places is always enabled, so no deadlock can exist.
func TestFindDeadlock_UnconditionallyEnabledTransition(t *testing.T) {
	places := map[string]int{"p1": 1}
	transitions := map[string]struct{}{"t1": {}, "free": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"},
		{Source: "t1", Target: "p1"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	oracle, err := symbolic.Compute(n)
	assert.NoError(t, err)

	result, err := ilp.FindDeadlock(n, oracle)
	assert.ErrorIs(t, err, ilp.ErrNoDeadlockPossible)
	assert.Nil(t, result)
}

// TestFindDeadlock_SourceTransitionShortCircuits verifies a transition
// with no input places but a real output place still triggers the
// structural short-circuit: starvation can never disable it.
func TestFindDeadlock_SourceTransitionShortCircuits(t *testing.T) {
	places := map[string]int{"p0": 0, "p1": 0}
	transitions := map[string]struct{}{"t0": {}}
	arcs := []net.Arc{
		{Source: "t0", Target: "p0"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	oracle, err := symbolic.Compute(n)
	assert.NoError(t, err)

	result, err := ilp.FindDeadlock(n, oracle)
	assert.ErrorIs(t, err, ilp.ErrNoDeadlockPossible)
	assert.Nil(t, result)
}

// TestFindDeadlock_NoDeadlockWhenAlwaysLive verifies a net whose sole
// reachable marking keeps its only transition permanently enabled (a
// self-loop place, so firing never changes the marking) reports no
// deadlock found, rather than a false positive.
func TestFindDeadlock_NoDeadlockWhenAlwaysLive(t *testing.T) {
	places := map[string]int{"p1": 1}
	transitions := map[string]struct{}{"t1": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"},
		{Source: "t1", Target: "p1"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	oracle, err := symbolic.Compute(n)
	assert.NoError(t, err)

	result, err := ilp.FindDeadlock(n, oracle)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

// TestFindDeadlock_HonorsMaxNodes verifies the per-solve node cap passed
// to FindDeadlock actually constrains the underlying branch-and-bound
// search: the same chain net that TestFindDeadlock_ChainEndsInDeadlock
// solves to a witness under default options reports a truncated search
// when the node budget is too small for any complete assignment to be
// reached — not a definite "no deadlock".
func TestFindDeadlock_HonorsMaxNodes(t *testing.T) {
	n := buildDeadlockChain(t)
	oracle, err := symbolic.Compute(n)
	assert.NoError(t, err)

	result, err := ilp.FindDeadlock(n, oracle, ilp.WithMaxNodes(1))
	assert.ErrorIs(t, err, ilp.ErrNodeLimit)
	assert.Nil(t, result)
}
