package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/petrinet/ilp"
	"github.com/katalvlaran/petrinet/net"
)

// TestBuildIncidenceMatrix_ClassifiesEveryPlace verifies produced, consumed,
// loop, and untouched places each yield the expected C[p,t] entry.
func TestBuildIncidenceMatrix_ClassifiesEveryPlace(t *testing.T) {
	places := map[string]int{"consumed": 1, "produced": 0, "loop": 1, "untouched": 0}
	transitions := map[string]struct{}{"t1": {}}
	arcs := []net.Arc{
		{Source: "consumed", Target: "t1"},
		{Source: "t1", Target: "produced"},
		{Source: "loop", Target: "t1"},
		{Source: "t1", Target: "loop"},
	}
	n, err := net.New(places, transitions, arcs)
	assert.NoError(t, err)

	inc := ilp.BuildIncidenceMatrix(n)
	idx := n.PlaceIndex
	assert.Equal(t, -1, inc.At(idx["consumed"], 0))
	assert.Equal(t, 1, inc.At(idx["produced"], 0))
	assert.Equal(t, 0, inc.At(idx["loop"], 0))
	assert.Equal(t, 0, inc.At(idx["untouched"], 0))
}

// TestBuildIncidenceMatrix_Dimensions verifies Rows/Cols match the net size.
func TestBuildIncidenceMatrix_Dimensions(t *testing.T) {
	places := map[string]int{"p1": 1, "p2": 0}
	transitions := map[string]struct{}{"t1": {}, "t2": {}}
	n, err := net.New(places, transitions, nil)
	assert.NoError(t, err)

	inc := ilp.BuildIncidenceMatrix(n)
	assert.Equal(t, 2, inc.Rows)
	assert.Equal(t, 2, inc.Cols)
}
