package net_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/petrinet/net"
)

// TestNew_NoPlaces ensures an empty place set is rejected.
func TestNew_NoPlaces(t *testing.T) {
	_, err := net.New(map[string]int{}, map[string]struct{}{"t1": {}}, nil)
	assert.ErrorIs(t, err, net.ErrNoPlaces)
}

// TestNew_TooManyPlaces ensures the bitmask width is enforced.
func TestNew_TooManyPlaces(t *testing.T) {
	places := make(map[string]int, net.MaxPlaces+1)
	for i := 0; i <= net.MaxPlaces; i++ {
		places[string(rune('a'+i))] = 0
	}
	_, err := net.New(places, map[string]struct{}{}, nil)
	assert.ErrorIs(t, err, net.ErrTooManyPlaces)
}

// TestNew_ArcClassification verifies place->transition arcs become pre-sets,
// transition->place arcs become post-sets, and place-place/transition-transition
// arcs are silently dropped.
func TestNew_ArcClassification(t *testing.T) {
	places := map[string]int{"p1": 1, "p2": 0, "p3": 0}
	transitions := map[string]struct{}{"t1": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"},
		{Source: "t1", Target: "p2"},
		{Source: "t1", Target: "p3"},
		{Source: "p1", Target: "p2"}, // dropped: place-place
	}

	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)
	assert.Equal(t, 3, n.NumPlaces())
	assert.Equal(t, 1, n.NumTransitions())

	tr, err := n.Transition("t1")
	assert.NoError(t, err)
	assert.Equal(t, []int{n.PlaceIndex["p1"]}, tr.Pre)
	assert.ElementsMatch(t, []int{n.PlaceIndex["p2"], n.PlaceIndex["p3"]}, tr.Post)
}

// TestNew_InitialMarking verifies non-zero token counts become marked places.
func TestNew_InitialMarking(t *testing.T) {
	places := map[string]int{"p1": 1, "p2": 0}
	n, err := net.New(places, map[string]struct{}{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, n.InitialMarking[n.PlaceIndex["p1"]])
	assert.Equal(t, 0, n.InitialMarking[n.PlaceIndex["p2"]])
	assert.NotZero(t, n.InitialMask&(1<<uint(n.PlaceIndex["p1"])))
}

// TestNet_Transition_Unknown covers the lookup-miss sentinel.
func TestNet_Transition_Unknown(t *testing.T) {
	n, err := net.New(map[string]int{"p1": 0}, map[string]struct{}{}, nil)
	assert.NoError(t, err)
	_, err = n.Transition("missing")
	assert.True(t, errors.Is(err, net.ErrUnknownTransition))
}

// TestTransition_PureOutputMask verifies self-looped places are excluded.
func TestTransition_PureOutputMask(t *testing.T) {
	places := map[string]int{"p1": 1, "p2": 0}
	transitions := map[string]struct{}{"t1": {}}
	arcs := []net.Arc{
		{Source: "p1", Target: "t1"}, // p1 in Pre
		{Source: "t1", Target: "p1"}, // p1 in Post too (self-loop)
		{Source: "t1", Target: "p2"}, // p2 pure output
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	tr, err := n.Transition("t1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(1<<uint(n.PlaceIndex["p2"])), tr.PureOutputMask())
}
