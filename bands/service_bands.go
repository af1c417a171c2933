package bands

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-networkbands/geo"
	. "github.com/ttpr0/go-networkbands/util"
)

var ErrEmptyInput = errors.New("no service-area records to difference")

//*******************************************
// service bands
//*******************************************

// Disjoint annulus of space reachable within Distance but not within the
// next-smaller cutoff. Name carries the first dissolved record's name.
type BandRecord struct {
	Name     string
	Distance float64
	Geom     orb.MultiPolygon
}

// CalcServiceBands turns the overlapping service-area table into disjoint
// bands. Per distinct distance all records are dissolved into one region
// (non-geometry attributes keep the first row's values), the regions are
// sorted by distance descending and each one is differenced against the next
// smaller region. The smallest region passes through untouched since nothing
// is subtracted from it.
//
// The chain assumes regions shrink monotonically with distance. If a smaller
// region is not contained in the larger one a warning is logged; the
// geometry is left as computed, never corrected.
func CalcServiceBands(table []ServiceAreaRecord) ([]BandRecord, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInput
	}

	regions, err := _DissolveByDistance(table)
	if err != nil {
		return nil, err
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Distance > regions[j].Distance
	})

	last := len(regions) - 1
	bands := make([]BandRecord, len(regions))
	for i := 0; i < last; i++ {
		larger := regions[i]
		smaller := regions[i+1]
		if geo.Area(smaller.Geom) > geo.Area(larger.Geom)+1e-9 {
			slog.Warn(fmt.Sprintf("dissolved region at %v is larger than region at %v, bands may overlap", smaller.Distance, larger.Distance))
		}
		diff, err := geo.Difference(larger.Geom, smaller.Geom)
		if err != nil {
			return nil, err
		}
		bands[i] = BandRecord{Name: larger.Name, Distance: larger.Distance, Geom: diff}
	}
	// the smallest region cannot be differenced against anything
	bands[last] = regions[last]
	slog.Info(fmt.Sprintf("dissolved and differenced %v rows into %v bands", len(table), len(bands)))
	return bands, nil
}

// one dissolved region per distinct distance, first-seen distance order
func _DissolveByDistance(table []ServiceAreaRecord) ([]BandRecord, error) {
	distances := NewList[float64](4)
	groups := NewDict[float64, List[orb.MultiPolygon]](4)
	names := NewDict[float64, string](4)
	for _, record := range table {
		if !groups.ContainsKey(record.Distance) {
			distances.Add(record.Distance)
			groups[record.Distance] = NewList[orb.MultiPolygon](4)
			names[record.Distance] = record.Name
		}
		if record.Err != nil || len(record.Geom) == 0 {
			continue
		}
		group := groups[record.Distance]
		group.Add(record.Geom)
		groups[record.Distance] = group
	}

	regions := make([]BandRecord, 0, distances.Length())
	for _, distance := range distances {
		merged, err := geo.Union(groups[distance]...)
		if err != nil {
			return nil, err
		}
		regions = append(regions, BandRecord{Name: names[distance], Distance: distance, Geom: merged})
	}
	return regions, nil
}
