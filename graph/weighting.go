package graph

import (
	"github.com/ttpr0/go-networkbands/structs"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// weighting interface
//*******************************************

type IWeighting interface {
	// Returns false if no weight is available for the edge.
	GetEdgeWeight(edge int32) (float64, bool)
}

//*******************************************
// attribute weighting
//*******************************************

// Reads edge weights lazily from a named edge attribute. Absence of the
// attribute on an edge only surfaces when that edge is looked up, so searches
// that never touch a broken edge still succeed.
type AttrWeighting struct {
	edges Array[structs.Edge]
	name  string
}

func NewAttrWeighting(g *Graph, name string) *AttrWeighting {
	return &AttrWeighting{
		edges: g.edges,
		name:  name,
	}
}

func (self *AttrWeighting) GetEdgeWeight(edge int32) (float64, bool) {
	return self.edges[edge].GetAttr(self.name)
}
