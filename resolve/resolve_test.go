package resolve

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/ttpr0/go-networkbands/graph"
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

func _BuildTestGraph() *graph.Graph {
	nodes := Array[structs.Node]{
		{Loc: orb.Point{0, 0}},
		{Loc: orb.Point{10, 0}},
		{Loc: orb.Point{0, 10}},
		{Loc: orb.Point{10, 10}},
	}
	return graph.BuildGraph(nodes, nil)
}

func TestResolveNearest(t *testing.T) {
	g := _BuildTestGraph()
	locations := []Location{
		{Name: "origin", Geom: orb.Point{1, 1}},
		{Name: "corner", Geom: orb.Point{9, 9.5}},
	}

	bindings, loc_errors, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	require.Empty(t, loc_errors)
	require.Equal(t, int32(0), bindings["origin"].Node)
	require.Equal(t, int32(3), bindings["corner"].Node)
	require.InDelta(t, math.Sqrt(2), bindings["origin"].Dist, 1e-9)
}

func TestResolveEmptyGraph(t *testing.T) {
	g := graph.BuildGraph(nil, nil)
	_, _, err := ResolveNodes(g, []Location{{Name: "a", Geom: orb.Point{0, 0}}})
	require.ErrorIs(t, err, ErrEmptyGraph)
}

func TestResolveInvalidGeometry(t *testing.T) {
	g := _BuildTestGraph()
	locations := []Location{
		{Name: "good", Geom: orb.Point{0, 1}},
		{Name: "bad", Geom: orb.Point{math.NaN(), 0}},
		{Name: "also-good", Geom: orb.Point{10, 9}},
	}

	bindings, loc_errors, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	// a single bad row must not abort the batch
	require.Len(t, loc_errors, 1)
	require.Equal(t, "bad", loc_errors[0].Name)
	require.ErrorIs(t, loc_errors[0].Err, ErrInvalidGeometry)
	require.Len(t, bindings, 2)
	require.Equal(t, int32(0), bindings["good"].Node)
	require.Equal(t, int32(3), bindings["also-good"].Node)
}

func TestResolvePlaceholderNames(t *testing.T) {
	g := _BuildTestGraph()
	locations := []Location{
		{Geom: orb.Point{0, 0}},
		{Geom: orb.Point{10, 10}},
	}

	bindings, _, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	require.Contains(t, bindings, "location_0")
	require.Contains(t, bindings, "location_1")
}

func TestResolveDuplicateNamesLastWins(t *testing.T) {
	g := _BuildTestGraph()
	locations := []Location{
		{Name: "depot", Geom: orb.Point{0, 0}},
		{Name: "depot", Geom: orb.Point{10, 10}},
	}

	bindings, _, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	require.Equal(t, int32(3), bindings["depot"].Node)
}

func TestResolveIdempotent(t *testing.T) {
	g := _BuildTestGraph()
	locations := []Location{
		{Name: "a", Geom: orb.Point{2, 3}},
		{Name: "b", Geom: orb.Point{8, 1}},
	}

	first, _, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	second, _, err := ResolveNodes(g, locations)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
