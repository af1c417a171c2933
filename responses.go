package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ttpr0/go-networkbands/bands"
	"github.com/ttpr0/go-networkbands/resolve"
	. "github.com/ttpr0/go-networkbands/util"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// pipeline responses
//**********************************************************

type ServiceAreaResponse struct {
	Areas  *geojson.FeatureCollection `json:"areas"`
	Errors []string                   `json:"errors,omitempty"`
}

func NewServiceAreaResponse(table []bands.ServiceAreaRecord, loc_errors []resolve.LocationError) ServiceAreaResponse {
	features := geojson.NewFeatureCollection()
	for _, record := range table {
		feature := geojson.NewFeature(_FeatureGeom(record.Geom))
		feature.Properties["name"] = record.Name
		feature.Properties["distance"] = record.Distance
		if record.Err != nil {
			feature.Properties["error"] = record.Err.Error()
		}
		features.Append(feature)
	}
	return ServiceAreaResponse{
		Areas:  features,
		Errors: _ErrorStrings(loc_errors),
	}
}

type ServiceBandsResponse struct {
	Bands  *geojson.FeatureCollection `json:"bands"`
	Errors []string                   `json:"errors,omitempty"`
}

func NewServiceBandsResponse(records []bands.BandRecord, loc_errors []resolve.LocationError) ServiceBandsResponse {
	features := geojson.NewFeatureCollection()
	for _, record := range records {
		feature := geojson.NewFeature(_FeatureGeom(record.Geom))
		feature.Properties["name"] = record.Name
		feature.Properties["distance"] = record.Distance
		features.Append(feature)
	}
	return ServiceBandsResponse{
		Bands:  features,
		Errors: _ErrorStrings(loc_errors),
	}
}

type ResolveResponse struct {
	Bindings Dict[string, resolve.NodeBinding] `json:"bindings"`
	Errors   []string                          `json:"errors,omitempty"`
}

func NewResolveResponse(bindings Dict[string, resolve.NodeBinding], loc_errors []resolve.LocationError) ResolveResponse {
	return ResolveResponse{
		Bindings: bindings,
		Errors:   _ErrorStrings(loc_errors),
	}
}

type ReachabilityResponse struct {
	Source int32                `json:"source"`
	Count  int                  `json:"count"`
	Costs  Dict[int32, float64] `json:"costs"`
}

func NewReachabilityResponse(source int32, costs Dict[int32, float64]) ReachabilityResponse {
	return ReachabilityResponse{
		Source: source,
		Count:  costs.Length(),
		Costs:  costs,
	}
}

func _FeatureGeom(geom orb.MultiPolygon) orb.Geometry {
	if geom == nil {
		return orb.MultiPolygon{}
	}
	return geom
}

func _ErrorStrings(loc_errors []resolve.LocationError) []string {
	if len(loc_errors) == 0 {
		return nil
	}
	strs := make([]string, len(loc_errors))
	for i, err := range loc_errors {
		strs[i] = err.Error()
	}
	return strs
}
