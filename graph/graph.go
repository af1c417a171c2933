package graph

import (
	"github.com/paulmach/orb"

	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// graph interfaces
//*******************************************

type IGraph interface {
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) orb.Point
	GetWeighting(name string) IWeighting
	// Explorers are cheap to create; use one instance per traversal.
	GetGraphExplorer(weight IWeighting) IGraphExplorer
}

type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// direction tells the traversal direction (FORWARD means outgoing edges,
	// BACKWARD ingoing edges)
	ForAdjacentEdges(node int32, dir Direction, callback func(ref structs.EdgeRef))
	// Returns false if the weight attribute is absent on the edge.
	GetEdgeWeight(ref structs.EdgeRef) (float64, bool)
}

type Direction byte

const (
	FORWARD  Direction = 0
	BACKWARD Direction = 1
)

//*******************************************
// base-graph
//*******************************************

var _ IGraph = &Graph{}

type Graph struct {
	nodes    Array[structs.Node]
	edges    Array[structs.Edge]
	topology _AdjacencyArray
}

func (self *Graph) NodeCount() int {
	return len(self.nodes)
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && node < int32(len(self.nodes))
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *Graph) GetNodeGeom(node int32) orb.Point {
	return self.nodes[node].Loc
}
func (self *Graph) GetWeighting(name string) IWeighting {
	return NewAttrWeighting(self, name)
}
func (self *Graph) GetGraphExplorer(weight IWeighting) IGraphExplorer {
	return &BaseGraphExplorer{
		graph:  self,
		weight: weight,
	}
}

//*******************************************
// base-graph explorer
//*******************************************

type BaseGraphExplorer struct {
	graph  *Graph
	weight IWeighting
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, dir Direction, callback func(ref structs.EdgeRef)) {
	self.graph.topology.ForAdjacent(node, dir, callback)
}
func (self *BaseGraphExplorer) GetEdgeWeight(ref structs.EdgeRef) (float64, bool) {
	return self.weight.GetEdgeWeight(ref.EdgeID)
}
