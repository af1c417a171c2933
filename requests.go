package main

import (
	"github.com/paulmach/orb"

	"github.com/ttpr0/go-networkbands/algorithm"
	"github.com/ttpr0/go-networkbands/bands"
	"github.com/ttpr0/go-networkbands/graph"
	"github.com/ttpr0/go-networkbands/resolve"
	. "github.com/ttpr0/go-networkbands/util"
)

//**********************************************************
// request params
//**********************************************************

type ServiceAreaRequest struct {
	// graph name from the config, defaults to "default"
	Graph string `json:"graph"`
	// point coordinates in the graph's coordinate space
	Locations [][]float64 `json:"locations"`
	// optional location names, matched to Locations by index
	Names []string `json:"names"`
	// cutoff distances, each produces one polygon per location
	Distances []float64 `json:"distances"`
	// nil falls back to the configured default alpha
	Alpha *float64 `json:"alpha"`
	// empty falls back to the configured default weight
	Weight string `json:"weight"`
	// 0 falls back to the configured default worker count
	Workers int `json:"workers"`
}

type ReachabilityRequest struct {
	Graph    string    `json:"graph"`
	Location []float64 `json:"location"`
	Distance float64   `json:"distance"`
	Weight   string    `json:"weight"`
}

//**********************************************************
// request handlers
//**********************************************************

func HandleServiceAreaRequest(req ServiceAreaRequest) Result {
	table, loc_errors, res := _CalcAreaTable(req)
	if table == nil {
		return res
	}
	return OK(NewServiceAreaResponse(table, loc_errors))
}

func HandleServiceBandsRequest(req ServiceAreaRequest) Result {
	table, loc_errors, res := _CalcAreaTable(req)
	if table == nil {
		return res
	}
	records, err := bands.CalcServiceBands(table)
	if err != nil {
		return BadRequest(err.Error())
	}
	return OK(NewServiceBandsResponse(records, loc_errors))
}

func HandleResolveRequest(req ServiceAreaRequest) Result {
	g_, locations, res := _RequestInputs(req)
	if !g_.HasValue() {
		return res
	}
	bindings, loc_errors, err := resolve.ResolveNodes(g_.Value, locations)
	if err != nil {
		return BadRequest(err.Error())
	}
	return OK(NewResolveResponse(bindings, loc_errors))
}

func HandleReachabilityRequest(req ReachabilityRequest) Result {
	if len(req.Location) < 2 {
		return BadRequest("location must be a coordinate pair")
	}
	if req.Graph == "" {
		req.Graph = "default"
	}
	g_ := MANAGER.GetGraph(req.Graph)
	if !g_.HasValue() {
		return BadRequest("Graph not found")
	}
	g := g_.Value
	weight := req.Weight
	if weight == "" {
		weight = MANAGER.DefaultWeight()
	}
	location := resolve.Location{Geom: orb.Point{req.Location[0], req.Location[1]}}
	bindings, _, err := resolve.ResolveNodes(g, []resolve.Location{location})
	if err != nil {
		return BadRequest(err.Error())
	}
	binding := bindings["location_0"]
	costs, err := algorithm.CalcRangeDijkstra(g, binding.Node, req.Distance, weight)
	if err != nil {
		return BadRequest(err.Error())
	}
	return OK(NewReachabilityResponse(binding.Node, costs))
}

//**********************************************************
// shared request plumbing
//**********************************************************

func _RequestInputs(req ServiceAreaRequest) (Optional[graph.IGraph], []resolve.Location, Result) {
	if len(req.Locations) == 0 {
		return None[graph.IGraph](), nil, BadRequest("at least one location is required")
	}
	if req.Graph == "" {
		req.Graph = "default"
	}
	g_ := MANAGER.GetGraph(req.Graph)
	if !g_.HasValue() {
		return None[graph.IGraph](), nil, BadRequest("Graph not found")
	}
	locations := make([]resolve.Location, len(req.Locations))
	for i, coords := range req.Locations {
		if len(coords) < 2 {
			return None[graph.IGraph](), nil, BadRequest("locations must be coordinate pairs")
		}
		name := ""
		if i < len(req.Names) {
			name = req.Names[i]
		}
		locations[i] = resolve.Location{Name: name, Geom: orb.Point{coords[0], coords[1]}}
	}
	return Some[graph.IGraph](g_.Value), locations, OK("")
}

func _CalcAreaTable(req ServiceAreaRequest) ([]bands.ServiceAreaRecord, []resolve.LocationError, Result) {
	if len(req.Distances) == 0 {
		return nil, nil, BadRequest("at least one cutoff distance is required")
	}
	g_, locations, res := _RequestInputs(req)
	if !g_.HasValue() {
		return nil, nil, res
	}
	g := g_.Value
	bindings, loc_errors, err := resolve.ResolveNodes(g, locations)
	if err != nil {
		return nil, nil, BadRequest(err.Error())
	}
	if bindings.Length() == 0 {
		return nil, nil, BadRequest("no locations could be resolved")
	}

	alpha := MANAGER.DefaultAlpha()
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	weight := req.Weight
	if weight == "" {
		weight = MANAGER.DefaultWeight()
	}
	workers := req.Workers
	if workers == 0 {
		workers = MANAGER.DefaultWorkers()
	}
	table := bands.CalcServiceAreas(g, bindings, req.Distances, bands.ServiceAreaOptions{
		Alpha:   alpha,
		Weight:  weight,
		Workers: workers,
	})
	return table, loc_errors, OK("")
}
