// Package config handles hexgrid tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
)

// Config holds all tool settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig describes the hex grid.
type GridConfig struct {
	Orientation     string  `yaml:"orientation"`      // pointy-odd, pointy-even, flat-odd, flat-even
	InscribedRadius float64 `yaml:"inscribed_radius"` // Center to edge midpoint
}

// MeshConfig holds triangulation settings.
type MeshConfig struct {
	Subdivision int `yaml:"subdivision"`
}

// TilesConfig selects which hexes get meshed.
type TilesConfig struct {
	Shape     string  `yaml:"shape"`  // hexagon, rectangle, island
	Radius    int     `yaml:"radius"` // hexagon and island
	Width     int     `yaml:"width"`  // rectangle
	Height    int     `yaml:"height"` // rectangle
	Seed      int64   `yaml:"seed"`
	Threshold float64 `yaml:"threshold"` // island noise cutoff, 0..1
	Octaves   int     `yaml:"octaves"`
	Frequency float64 `yaml:"frequency"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Format string `yaml:"format"` // obj, json
	Path   string `yaml:"path"`   // empty or "-" writes to stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Orientation:     "pointy-odd",
			InscribedRadius: 1.0,
		},
		Mesh: MeshConfig{
			Subdivision: 1,
		},
		Tiles: TilesConfig{
			Shape:     "hexagon",
			Radius:    3,
			Width:     8,
			Height:    6,
			Seed:      1,
			Threshold: 0.5,
			Octaves:   4,
			Frequency: 0.15,
		},
		Output: OutputConfig{
			Format: "obj",
			Path:   "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Build returns the validated grid configuration described by g.
func (g GridConfig) Build() (hexgrid.Config, error) {
	o, err := hexgrid.ParseOrientation(g.Orientation)
	if err != nil {
		return hexgrid.Config{}, err
	}
	return hexgrid.NewConfig(o, g.InscribedRadius)
}

// System returns the coordinate system described by g.
func (g GridConfig) System() (*hexgrid.System, error) {
	cfg, err := g.Build()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	return hexgrid.NewSystem(cfg)
}
