package hull

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/paulmach/orb"

	"github.com/ttpr0/go-networkbands/geo"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// alpha shape
//*******************************************

// CalcAlphaShape builds a possibly-concave hull around a point cloud.
//
// The points are Delaunay-triangulated and triangles with circumradius below
// 1/alpha are merged into the result; alpha = 0 keeps every triangle and
// yields the convex hull. Larger alpha values cut deeper into the cloud and
// can fragment the result into multiple parts.
//
// Degenerate inputs (fewer than 3 distinct points, collinear points, an alpha
// filtering out every triangle) return a nil geometry and no error; callers
// must treat that as a valid empty area.
func CalcAlphaShape(points []orb.Point, alpha float64) (orb.MultiPolygon, error) {
	distinct := _DistinctPoints(points)
	if len(distinct) < 3 {
		return nil, nil
	}

	triangulation, err := delaunay.Triangulate(distinct)
	if err != nil {
		// collinear or otherwise untriangulatable cloud
		return nil, nil
	}

	triangles := NewList[orb.MultiPolygon](len(triangulation.Triangles) / 3)
	for i := 0; i < len(triangulation.Triangles); i += 3 {
		a := triangulation.Points[triangulation.Triangles[i]]
		b := triangulation.Points[triangulation.Triangles[i+1]]
		c := triangulation.Points[triangulation.Triangles[i+2]]
		if !_TriangleAccepted(a, b, c, alpha) {
			continue
		}
		ring := orb.Ring{
			{a.X, a.Y},
			{b.X, b.Y},
			{c.X, c.Y},
			{a.X, a.Y},
		}
		triangles.Add(orb.MultiPolygon{orb.Polygon{ring}})
	}
	if triangles.Length() == 0 {
		return nil, nil
	}
	return geo.Union(triangles...)
}

func _DistinctPoints(points []orb.Point) []delaunay.Point {
	seen := NewDict[orb.Point, bool](len(points))
	distinct := make([]delaunay.Point, 0, len(points))
	for _, point := range points {
		if seen.ContainsKey(point) {
			continue
		}
		seen[point] = true
		distinct = append(distinct, delaunay.Point{X: point[0], Y: point[1]})
	}
	return distinct
}

func _TriangleAccepted(a, b, c delaunay.Point, alpha float64) bool {
	area := math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	if area == 0 {
		return false
	}
	if alpha <= 0 {
		return true
	}
	la := math.Hypot(b.X-a.X, b.Y-a.Y)
	lb := math.Hypot(c.X-b.X, c.Y-b.Y)
	lc := math.Hypot(a.X-c.X, a.Y-c.Y)
	circumradius := la * lb * lc / (4 * area)
	return circumradius < 1/alpha
}
