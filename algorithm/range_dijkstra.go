package algorithm

import (
	"github.com/pkg/errors"

	"github.com/ttpr0/go-networkbands/graph"
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

var ErrMissingWeightAttribute = errors.New("weight attribute missing on edge")

type _PQItem struct {
	item int32
	dist float64
}

// CalcRangeDijkstra computes all nodes reachable from source within max_range
// accumulated cost, following outgoing edges weighted by the named edge
// attribute. The result maps every reached node to its shortest-path cost;
// an isolated source yields only itself at cost 0.
//
// Weights must be non-negative. A traversed edge without the weight attribute
// fails the search with ErrMissingWeightAttribute.
func CalcRangeDijkstra(g graph.IGraph, source int32, max_range float64, weight string) (Dict[int32, float64], error) {
	if !g.IsNode(source) {
		return nil, errors.Errorf("source node %v not in graph", source)
	}

	explorer := g.GetGraphExplorer(g.GetWeighting(weight))
	dist := NewDict[int32, float64](100)
	dist[source] = 0

	heap := NewPriorityQueue[_PQItem, float64](100)
	heap.Enqueue(_PQItem{source, 0}, 0)

	var search_err error
	for search_err == nil {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		// lazy decrease-key, skip stale entries
		if dist[curr_id] < curr_dist {
			continue
		}
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, func(ref structs.EdgeRef) {
			if search_err != nil {
				return
			}
			edge_weight, ok := explorer.GetEdgeWeight(ref)
			if !ok {
				search_err = errors.Wrapf(ErrMissingWeightAttribute, "edge %v", ref.EdgeID)
				return
			}
			new_length := curr_dist + edge_weight
			if new_length > max_range {
				return
			}
			other_id := ref.OtherID
			other_dist, seen := dist[other_id]
			if !seen || other_dist > new_length {
				dist[other_id] = new_length
				heap.Enqueue(_PQItem{other_id, new_length}, new_length)
			}
		})
	}
	if search_err != nil {
		return nil, search_err
	}
	return dist, nil
}
