package resolve

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-networkbands/graph"
	. "github.com/ttpr0/go-networkbands/util"
)

var (
	ErrEmptyGraph      = errors.New("graph has no nodes")
	ErrInvalidGeometry = errors.New("location has no usable point geometry")
)

//*******************************************
// locations
//*******************************************

type Location struct {
	Name string    `json:"name"`
	Geom orb.Point `json:"geometry"`
}

// Binding of a named location to its closest graph node. Dist is the planar
// distance between the location and the node it was snapped to.
type NodeBinding struct {
	Node int32   `json:"node"`
	Dist float64 `json:"snap_distance"`
}

type LocationError struct {
	Name string
	Err  error
}

func (self LocationError) Error() string {
	return self.Name + ": " + self.Err.Error()
}

//*******************************************
// node resolver
//*******************************************

// ResolveNodes snaps every location to its nearest graph node (planar
// distance, first match wins on ties). Locations without a name are assigned
// positional location_{index} placeholders. Locations with broken coordinates
// are collected into the returned error list; the rest of the batch is still
// processed. Only an empty graph fails the whole call.
//
// Duplicate names overwrite earlier bindings (last wins). This mirrors the
// mapping contract and is logged as a warning since it silently drops rows.
func ResolveNodes(g graph.IGraph, locations []Location) (Dict[string, NodeBinding], []LocationError, error) {
	if g.NodeCount() == 0 {
		return nil, nil, ErrEmptyGraph
	}

	index := _BuildNodeIndex(g)
	bindings := NewDict[string, NodeBinding](len(locations))
	loc_errors := NewList[LocationError](0)
	for i, location := range locations {
		name := location.Name
		if name == "" {
			name = fmt.Sprintf("location_%d", i)
		}
		if !_IsValidPoint(location.Geom) {
			loc_errors.Add(LocationError{Name: name, Err: ErrInvalidGeometry})
			continue
		}
		node, dist := index.GetClosestNode(location.Geom)
		if bindings.ContainsKey(name) {
			slog.Warn("duplicate location name, overwriting earlier binding: " + name)
		}
		bindings[name] = NodeBinding{Node: node, Dist: dist}
	}
	return bindings, loc_errors, nil
}

func _IsValidPoint(point orb.Point) bool {
	for _, c := range point {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

//*******************************************
// spatial node index
//*******************************************

type _NodeEntry struct {
	id  int32
	loc orb.Point
}

func (self *_NodeEntry) Bounds() rtreego.Rect {
	return rtreego.Point{self.loc[0], self.loc[1]}.ToRect(1e-9)
}

type _NodeIndex struct {
	tree *rtreego.Rtree
}

func _BuildNodeIndex(g graph.IGraph) *_NodeIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for i := 0; i < g.NodeCount(); i++ {
		loc := g.GetNodeGeom(int32(i))
		tree.Insert(&_NodeEntry{id: int32(i), loc: loc})
	}
	return &_NodeIndex{tree: tree}
}

func (self *_NodeIndex) GetClosestNode(point orb.Point) (int32, float64) {
	nearest := self.tree.NearestNeighbor(rtreego.Point{point[0], point[1]})
	entry := nearest.(*_NodeEntry)
	dx := entry.loc[0] - point[0]
	dy := entry.loc[1] - point[1]
	return entry.id, math.Sqrt(dx*dx + dy*dy)
}
