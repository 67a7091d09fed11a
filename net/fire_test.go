package net_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/petrinet/net"
)

func buildSimpleChain(t *testing.T) *net.Net {
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

// TestEnabled_RequiresPreTokensAndEmptyPureOutput checks both halves of the
// enabled predicate independently.
func TestEnabled_RequiresPreTokensAndEmptyPureOutput(t *testing.T) {
	n := buildSimpleChain(t)
	t1, err := n.Transition("t1")
	assert.NoError(t, err)

	assert.True(t, net.Enabled(n.InitialMask, t1))

	// p2 already marked blocks t1 (pure output not empty).
	blocked := n.InitialMask | (1 << uint(n.PlaceIndex["p2"]))
	assert.False(t, net.Enabled(blocked, t1))

	// No tokens in p1 disables t1.
	empty := uint64(0)
	assert.False(t, net.Enabled(empty, t1))
}

// TestFire_ProducesExpectedSuccessor checks the two-check, total-function
// firing semantics end to end along a chain.
func TestFire_ProducesExpectedSuccessor(t *testing.T) {
	n := buildSimpleChain(t)
	t1, _ := n.Transition("t1")
	t2, _ := n.Transition("t2")

	m1, ok := net.Fire(n.InitialMask, t1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<uint(n.PlaceIndex["p2"])), m1)

	m2, ok := net.Fire(m1, t2)
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<uint(n.PlaceIndex["p3"])), m2)

	// t2 is not enabled at the initial marking.
	_, ok = net.Fire(n.InitialMask, t2)
	assert.False(t, ok)
}

// TestFire_SelfLoopPreservesPlace verifies a self-looped place remains
// marked across a firing that both consumes and produces it.
func TestFire_SelfLoopPreservesPlace(t *testing.T) {
	places := map[string]int{"p1": 1}
	transitions := map[string]struct{}{"t1": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"},
		{Source: "t1", Target: "p1"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	t1, _ := n.Transition("t1")
	next, ok := net.Fire(n.InitialMask, t1)
	assert.True(t, ok)
	assert.Equal(t, n.InitialMask, next)
}

// TestMaskTupleRoundTrip checks MaskToTuple and TupleToMask are mutual inverses.
func TestMaskTupleRoundTrip(t *testing.T) {
	tuple := []int{1, 0, 1, 1, 0}
	mask := net.TupleToMask(tuple)
	got := net.MaskToTuple(mask, len(tuple))
	assert.Equal(t, tuple, got)

	mask2 := uint64(0b10110)
	got2 := net.MaskToTuple(mask2, 5)
	assert.Equal(t, mask2, net.TupleToMask(got2))
}
