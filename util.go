package main

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-networkbands/resolve"
	. "github.com/ttpr0/go-networkbands/util"
)

type _LocationRow struct {
	Name string  `csv:"name"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
}

// LoadLocationsCSV reads point locations from a delimited file with "name",
// "x" and "y" columns (name optional). Repeated names get a uuid suffix so
// later rows cannot silently overwrite earlier bindings during resolution.
func LoadLocationsCSV(file string, delimiter rune) ([]resolve.Location, error) {
	rows, err := ReadCSVFromFile[_LocationRow](file, delimiter)
	if err != nil {
		return nil, err
	}
	seen := NewDict[string, bool](rows.Length())
	locations := make([]resolve.Location, 0, rows.Length())
	for _, row := range rows {
		name := row.Name
		if name != "" && seen.ContainsKey(name) {
			name = name + "-" + uuid.NewString()[:8]
			slog.Warn("duplicate location name " + row.Name + ", renamed to " + name)
		}
		if name != "" {
			seen[name] = true
		}
		locations = append(locations, resolve.Location{
			Name: name,
			Geom: orb.Point{row.X, row.Y},
		})
	}
	return locations, nil
}
