package bands

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/ttpr0/go-networkbands/geo"
)

func _Square(center orb.Point, half float64) orb.MultiPolygon {
	return orb.MultiPolygon{orb.Polygon{orb.Ring{
		{center[0] - half, center[1] - half},
		{center[0] + half, center[1] - half},
		{center[0] + half, center[1] + half},
		{center[0] - half, center[1] + half},
		{center[0] - half, center[1] - half},
	}}}
}

// nested service areas around one location, the usual pipeline shape
func _NestedTable() []ServiceAreaRecord {
	center := orb.Point{0, 0}
	return []ServiceAreaRecord{
		{Name: "A", Distance: 1000, Geom: _Square(center, 10)},
		{Name: "A", Distance: 2000, Geom: _Square(center, 20)},
		{Name: "A", Distance: 3000, Geom: _Square(center, 30)},
	}
}

func TestServiceBandsEmptyInput(t *testing.T) {
	_, err := CalcServiceBands(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestServiceBandsOrderAndAreas(t *testing.T) {
	records, err := CalcServiceBands(_NestedTable())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// descending distance order
	require.Equal(t, 3000.0, records[0].Distance)
	require.Equal(t, 2000.0, records[1].Distance)
	require.Equal(t, 1000.0, records[2].Distance)

	// each band is the region minus the next smaller one
	require.InDelta(t, 3600-1600, geo.Area(records[0].Geom), 1e-9)
	require.InDelta(t, 1600-400, geo.Area(records[1].Geom), 1e-9)
	require.InDelta(t, 400, geo.Area(records[2].Geom), 1e-9)
}

func TestServiceBandsSmallestPassesThrough(t *testing.T) {
	table := _NestedTable()
	records, err := CalcServiceBands(table)
	require.NoError(t, err)

	// the smallest region is never differenced
	require.Equal(t, table[0].Geom, records[2].Geom)
}

func TestServiceBandsPartition(t *testing.T) {
	// two locations with overlapping areas per distance
	table := []ServiceAreaRecord{
		{Name: "A", Distance: 1000, Geom: _Square(orb.Point{0, 0}, 10)},
		{Name: "B", Distance: 1000, Geom: _Square(orb.Point{15, 0}, 10)},
		{Name: "A", Distance: 2000, Geom: _Square(orb.Point{0, 0}, 20)},
		{Name: "B", Distance: 2000, Geom: _Square(orb.Point{15, 0}, 20)},
	}
	records, err := CalcServiceBands(table)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// bands must not overlap
	intersect, err := geo.Intersection(records[0].Geom, records[1].Geom)
	require.NoError(t, err)
	require.InDelta(t, 0.0, geo.Area(intersect), 1e-9)

	// and together they cover the dissolved 2000 region exactly
	dissolved_2000, err := geo.Union(table[2].Geom, table[3].Geom)
	require.NoError(t, err)
	combined, err := geo.Union(records[0].Geom, records[1].Geom)
	require.NoError(t, err)
	require.InDelta(t, geo.Area(dissolved_2000), geo.Area(combined), 1e-9)
}

func TestServiceBandsSingleDistance(t *testing.T) {
	table := []ServiceAreaRecord{
		{Name: "A", Distance: 500, Geom: _Square(orb.Point{0, 0}, 5)},
		{Name: "B", Distance: 500, Geom: _Square(orb.Point{3, 0}, 5)},
	}
	records, err := CalcServiceBands(table)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 500.0, records[0].Distance)

	merged, err := geo.Union(table[0].Geom, table[1].Geom)
	require.NoError(t, err)
	require.InDelta(t, geo.Area(merged), geo.Area(records[0].Geom), 1e-9)
}

func TestServiceBandsSkipsFailedRecords(t *testing.T) {
	table := []ServiceAreaRecord{
		{Name: "A", Distance: 1000, Geom: _Square(orb.Point{0, 0}, 10)},
		{Name: "B", Distance: 1000, Err: ErrEmptyInput},
		{Name: "A", Distance: 2000, Geom: _Square(orb.Point{0, 0}, 20)},
		{Name: "B", Distance: 2000},
	}
	records, err := CalcServiceBands(table)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.InDelta(t, 1600-400, geo.Area(records[0].Geom), 1e-9)
	require.InDelta(t, 400, geo.Area(records[1].Geom), 1e-9)
}
