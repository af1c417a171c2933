package algorithm

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/ttpr0/go-networkbands/graph"
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

// 0-1-2-3-4 in a line, unit "length" on every edge, both directions
func _BuildLineGraph() *graph.Graph {
	nodes := NewArray[structs.Node](5)
	for i := 0; i < 5; i++ {
		nodes[i] = structs.Node{Loc: orb.Point{float64(i), 0}}
	}
	edges := NewList[structs.Edge](8)
	for i := int32(0); i < 4; i++ {
		edges.Add(structs.NewEdge(i, i+1, map[string]float64{"length": 1}))
		edges.Add(structs.NewEdge(i+1, i, map[string]float64{"length": 1}))
	}
	return graph.BuildGraph(nodes, Array[structs.Edge](edges))
}

func TestRangeDijkstraLine(t *testing.T) {
	g := _BuildLineGraph()

	reachable, err := CalcRangeDijkstra(g, 0, 2, "length")
	require.NoError(t, err)
	require.Equal(t, Dict[int32, float64]{0: 0, 1: 1, 2: 2}, reachable)
}

func TestRangeDijkstraMonotonic(t *testing.T) {
	g := _BuildLineGraph()

	smaller, err := CalcRangeDijkstra(g, 2, 1, "length")
	require.NoError(t, err)
	larger, err := CalcRangeDijkstra(g, 2, 3, "length")
	require.NoError(t, err)

	require.LessOrEqual(t, smaller.Length(), larger.Length())
	for node, cost := range smaller {
		require.Contains(t, larger, node)
		require.Equal(t, cost, larger[node])
	}
}

func TestRangeDijkstraIsolatedSource(t *testing.T) {
	nodes := Array[structs.Node]{{Loc: orb.Point{0, 0}}, {Loc: orb.Point{5, 5}}}
	g := graph.BuildGraph(nodes, nil)

	reachable, err := CalcRangeDijkstra(g, 1, 100, "length")
	require.NoError(t, err)
	require.Equal(t, Dict[int32, float64]{1: 0}, reachable)
}

func TestRangeDijkstraShortestOfParallelEdges(t *testing.T) {
	nodes := Array[structs.Node]{{Loc: orb.Point{0, 0}}, {Loc: orb.Point{1, 0}}}
	edges := Array[structs.Edge]{
		structs.NewEdge(0, 1, map[string]float64{"length": 7}),
		structs.NewEdge(0, 1, map[string]float64{"length": 3}),
	}
	g := graph.BuildGraph(nodes, edges)

	reachable, err := CalcRangeDijkstra(g, 0, 10, "length")
	require.NoError(t, err)
	require.Equal(t, 3.0, reachable[1])
}

func TestRangeDijkstraMissingWeight(t *testing.T) {
	nodes := Array[structs.Node]{{Loc: orb.Point{0, 0}}, {Loc: orb.Point{1, 0}}}
	edges := Array[structs.Edge]{
		structs.NewEdge(0, 1, map[string]float64{"time": 10}),
	}
	g := graph.BuildGraph(nodes, edges)

	_, err := CalcRangeDijkstra(g, 0, 100, "length")
	require.ErrorIs(t, err, ErrMissingWeightAttribute)
}

func TestRangeDijkstraCutoffPrunesMissingWeight(t *testing.T) {
	// the broken edge sits beyond the cutoff and is never relaxed into
	nodes := NewArray[structs.Node](3)
	edges := Array[structs.Edge]{
		structs.NewEdge(0, 1, map[string]float64{"length": 5}),
		structs.NewEdge(1, 2, map[string]float64{"time": 1}),
	}
	g := graph.BuildGraph(nodes, edges)

	reachable, err := CalcRangeDijkstra(g, 0, 3, "length")
	require.NoError(t, err)
	require.Equal(t, Dict[int32, float64]{0: 0}, reachable)
}

func TestRangeDijkstraInvalidSource(t *testing.T) {
	g := _BuildLineGraph()
	_, err := CalcRangeDijkstra(g, 99, 10, "length")
	require.Error(t, err)
}
