package geo

import (
	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

//*******************************************
// geometry conversion
//*******************************************

func PolyToGeom(poly orb.MultiPolygon) polygol.Geom {
	geom := make([][][][]float64, len(poly))
	for i, polygon := range poly {
		rings := make([][][]float64, len(polygon))
		for j, ring := range polygon {
			coords := make([][]float64, len(ring))
			for k, point := range ring {
				coords[k] = []float64{point[0], point[1]}
			}
			rings[j] = coords
		}
		geom[i] = rings
	}
	return geom
}

func GeomToPoly(geom polygol.Geom) orb.MultiPolygon {
	if len(geom) == 0 {
		return nil
	}
	poly := make(orb.MultiPolygon, len(geom))
	for i, rings := range geom {
		polygon := make(orb.Polygon, len(rings))
		for j, coords := range rings {
			ring := make(orb.Ring, len(coords))
			for k, coord := range coords {
				ring[k] = orb.Point{coord[0], coord[1]}
			}
			polygon[j] = ring
		}
		poly[i] = polygon
	}
	return poly
}

//*******************************************
// boolean operations
//*******************************************

// Union merges the given regions into one, skipping empty inputs.
// Returns nil if every input is empty.
func Union(polys ...orb.MultiPolygon) (orb.MultiPolygon, error) {
	geoms := make([]polygol.Geom, 0, len(polys))
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		geoms = append(geoms, PolyToGeom(poly))
	}
	if len(geoms) == 0 {
		return nil, nil
	}
	if len(geoms) == 1 {
		return GeomToPoly(geoms[0]), nil
	}
	merged, err := polygol.Union(geoms[0], geoms[1:]...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to union geometries")
	}
	return GeomToPoly(merged), nil
}

// Difference removes b from a. An empty b leaves a unchanged,
// an empty a stays empty.
func Difference(a orb.MultiPolygon, b orb.MultiPolygon) (orb.MultiPolygon, error) {
	if len(a) == 0 {
		return nil, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	diff, err := polygol.Difference(PolyToGeom(a), PolyToGeom(b))
	if err != nil {
		return nil, errors.Wrap(err, "failed to difference geometries")
	}
	return GeomToPoly(diff), nil
}

func Intersection(a orb.MultiPolygon, b orb.MultiPolygon) (orb.MultiPolygon, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	intersect, err := polygol.Intersection(PolyToGeom(a), PolyToGeom(b))
	if err != nil {
		return nil, errors.Wrap(err, "failed to intersect geometries")
	}
	return GeomToPoly(intersect), nil
}

//*******************************************
// measures
//*******************************************

func Area(poly orb.MultiPolygon) float64 {
	if len(poly) == 0 {
		return 0
	}
	return planar.Area(poly)
}
