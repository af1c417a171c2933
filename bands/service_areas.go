package bands

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-networkbands/algorithm"
	"github.com/ttpr0/go-networkbands/graph"
	"github.com/ttpr0/go-networkbands/hull"
	"github.com/ttpr0/go-networkbands/resolve"
	. "github.com/ttpr0/go-networkbands/util"
)

//*******************************************
// service areas
//*******************************************

// One row of the service-area table. Err is set when the search or hull
// failed for this (location, distance) pair; a nil Geom with nil Err is a
// valid empty area (too few reachable nodes for a hull).
type ServiceAreaRecord struct {
	Name     string
	Distance float64
	Geom     orb.MultiPolygon
	Err      error
}

type ServiceAreaOptions struct {
	// alpha-shape parameter, 0 produces convex hulls
	Alpha float64
	// edge attribute used as traversal cost
	Weight string
	// outer-loop parallelism, values < 2 run sequentially
	Workers int
	// optional, called after each finished (location, distance) pair
	Progress func(done, total int)
}

// CalcServiceAreas computes one reachability polygon per location and cutoff
// distance: a cost-limited Dijkstra from the bound node, the reachable node
// coordinates, and an alpha shape around them.
//
// Rows are ordered by location name, then by distance in the supplied order.
// Failures are attached per row and never abort the batch. The graph is only
// read, so workers share it without locking.
func CalcServiceAreas(g graph.IGraph, bindings Dict[string, resolve.NodeBinding], distances []float64, opts ServiceAreaOptions) []ServiceAreaRecord {
	names := make([]string, 0, bindings.Length())
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	slog.Info(fmt.Sprintf("creating service areas for %v locations at cutoffs %v", len(names), distances))

	total := len(names) * len(distances)
	records := make([]ServiceAreaRecord, total)
	var done atomic.Int64
	process := func(index int) {
		name := names[index/len(distances)]
		distance := distances[index%len(distances)]
		records[index] = _CalcServiceArea(g, name, bindings[name], distance, opts)
		if opts.Progress != nil {
			opts.Progress(int(done.Add(1)), total)
		}
	}

	workers := opts.Workers
	if workers < 2 {
		for i := 0; i < total; i++ {
			process(i)
		}
		return records
	}
	jobs := make(chan int)
	var group sync.WaitGroup
	for w := 0; w < workers; w++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for i := range jobs {
				process(i)
			}
		}()
	}
	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)
	group.Wait()
	return records
}

func _CalcServiceArea(g graph.IGraph, name string, binding resolve.NodeBinding, distance float64, opts ServiceAreaOptions) ServiceAreaRecord {
	record := ServiceAreaRecord{Name: name, Distance: distance}
	reachable, err := algorithm.CalcRangeDijkstra(g, binding.Node, distance, opts.Weight)
	if err != nil {
		slog.Error(fmt.Sprintf("search failed for %v at %v: %v", name, distance, err))
		record.Err = err
		return record
	}
	points := make([]orb.Point, 0, reachable.Length())
	for node := range reachable {
		points = append(points, g.GetNodeGeom(node))
	}
	geom, err := hull.CalcAlphaShape(points, opts.Alpha)
	if err != nil {
		slog.Error(fmt.Sprintf("hull failed for %v at %v: %v", name, distance, err))
		record.Err = err
		return record
	}
	record.Geom = geom
	return record
}
