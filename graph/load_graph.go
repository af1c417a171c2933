package graph

import (
	"github.com/paulmach/orb"

	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// graph load and store
//*******************************************

// On-disk layout of a graph: one JSON document with node coordinates and
// attributed directed edges. This is the module's own storage format, not a
// map-data exchange format.
type GraphDocument struct {
	Nodes []NodeDocument `json:"nodes"`
	Edges []EdgeDocument `json:"edges"`
}

type NodeDocument struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type EdgeDocument struct {
	From  int32              `json:"from"`
	To    int32              `json:"to"`
	Attrs map[string]float64 `json:"attrs"`
}

func LoadGraph(file string) (*Graph, error) {
	doc, err := ReadJSONFromFile[GraphDocument](file)
	if err != nil {
		return nil, err
	}
	nodes := NewArray[structs.Node](len(doc.Nodes))
	for i, node := range doc.Nodes {
		nodes[i] = structs.Node{Loc: orb.Point{node.X, node.Y}}
	}
	edges := NewArray[structs.Edge](len(doc.Edges))
	for i, edge := range doc.Edges {
		edges[i] = structs.NewEdge(edge.From, edge.To, edge.Attrs)
	}
	return BuildGraph(nodes, edges), nil
}

func StoreGraph(g *Graph, file string) error {
	doc := GraphDocument{
		Nodes: make([]NodeDocument, g.NodeCount()),
		Edges: make([]EdgeDocument, g.EdgeCount()),
	}
	for i := 0; i < g.NodeCount(); i++ {
		loc := g.GetNodeGeom(int32(i))
		doc.Nodes[i] = NodeDocument{X: loc[0], Y: loc[1]}
	}
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		doc.Edges[i] = EdgeDocument{From: edge.NodeA, To: edge.NodeB, Attrs: edge.Attrs}
	}
	return WriteJSONToFile(doc, file)
}
