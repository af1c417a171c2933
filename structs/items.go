package structs

import (
	"github.com/paulmach/orb"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc orb.Point
}

// Edges are directed; parallel edges between the same node pair are allowed.
// Attrs carries named numeric edge attributes (e.g. "length").
type Edge struct {
	NodeA int32
	NodeB int32
	Attrs map[string]float64
}

func NewEdge(from, to int32, attrs map[string]float64) Edge {
	return Edge{
		NodeA: from,
		NodeB: to,
		Attrs: attrs,
	}
}

func (self Edge) GetAttr(name string) (float64, bool) {
	value, ok := self.Attrs[name]
	return value, ok
}

//*******************************************
// adjacency
//*******************************************

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}
