package graph

import (
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// build graphs
//*******************************************

func BuildGraph(nodes Array[structs.Node], edges Array[structs.Edge]) *Graph {
	topology := _BuildTopology(nodes, edges)
	return &Graph{
		nodes:    nodes,
		edges:    edges,
		topology: topology,
	}
}
