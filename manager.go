package main

import (
	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-networkbands/graph"
	. "github.com/ttpr0/go-networkbands/util"
)

//**********************************************************
// bands manager
//**********************************************************

// Holds the loaded network graphs and the request defaults. Graphs are
// read-only after startup and shared by every request handler.
type BandsManager struct {
	graphs   Dict[string, *graph.Graph]
	defaults Config
}

func NewBandsManager(config Config) *BandsManager {
	graphs := NewDict[string, *graph.Graph](len(config.Graphs))
	for name, file := range config.Graphs {
		slog.Info("loading graph " + name + " from " + file)
		g, err := graph.LoadGraph(file)
		if err != nil {
			slog.Error("failed to load graph " + name + ": " + err.Error())
			panic(err)
		}
		slog.Info("loaded graph", "name", name, "nodes", g.NodeCount(), "edges", g.EdgeCount())
		graphs[name] = g
	}
	return &BandsManager{
		graphs:   graphs,
		defaults: config,
	}
}

func (self *BandsManager) GetGraph(name string) Optional[*graph.Graph] {
	if g, ok := self.graphs[name]; ok {
		return Some(g)
	}
	return None[*graph.Graph]()
}

func (self *BandsManager) GraphNames() []string {
	names := make([]string, 0, self.graphs.Length())
	for name := range self.graphs {
		names = append(names, name)
	}
	return names
}

func (self *BandsManager) DefaultWeight() string {
	if self.defaults.Defaults.Weight == "" {
		return "length"
	}
	return self.defaults.Defaults.Weight
}

func (self *BandsManager) DefaultAlpha() float64 {
	return self.defaults.Defaults.Alpha
}

func (self *BandsManager) DefaultWorkers() int {
	return self.defaults.Defaults.Workers
}
