package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	. "github.com/ttpr0/go-networkbands/util"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	// graph name -> graph document path
	Graphs   Dict[string, string] `yaml:"graphs"`
	Defaults struct {
		Alpha   float64 `yaml:"alpha"`
		Weight  string  `yaml:"weight"`
		Workers int     `yaml:"workers"`
	} `yaml:"defaults"`
}
