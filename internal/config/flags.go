package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig      = "config"
	FlagDebug       = "debug"
	FlagLogFile     = "log-file"
	FlagOrientation = "orientation"
	FlagRadius      = "radius"
	FlagSubdivision = "subdivision"
	FlagShape       = "shape"
	FlagTiles       = "tiles"
	FlagSeed        = "seed"
	FlagFormat      = "format"
	FlagOutput      = "output"
)

// RegisterFlags adds the configuration override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Path to config file")
	fs.Bool(FlagDebug, false, "Enable debug logging")
	fs.String(FlagLogFile, "", "Also write logs to this file")
	fs.StringP(FlagOrientation, "O", "", "Grid orientation: pointy-odd, pointy-even, flat-odd, flat-even")
	fs.Float64P(FlagRadius, "r", 0, "Inscribed hex radius")
}

// RegisterMeshFlags adds the mesh generation override flags to fs.
func RegisterMeshFlags(fs *pflag.FlagSet) {
	fs.IntP(FlagSubdivision, "s", 0, "Triangulation subdivision level (>= 1)")
	fs.String(FlagShape, "", "Tile set shape: hexagon, rectangle, island")
	fs.IntP(FlagTiles, "n", 0, "Tile set radius (hexagon, island)")
	fs.Int64(FlagSeed, 0, "Noise seed (island)")
	fs.StringP(FlagFormat, "f", "", "Output format: obj, json")
	fs.StringP(FlagOutput, "o", "", "Output path (default stdout)")
}

// ConfigPath returns the explicit config path if provided via --config.
func ConfigPath(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(FlagConfig) == nil {
		return ""
	}
	path, _ := fs.GetString(FlagConfig)
	return path
}

// applyFlags applies flags that were set on the command line to cfg.
// Flags that were not registered on fs or not changed are ignored.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagDebug:
			var debug bool
			if debug, err = fs.GetBool(FlagDebug); err == nil && debug {
				cfg.Logging.Level = "debug"
			}
		case FlagLogFile:
			cfg.Logging.LogFile, err = fs.GetString(FlagLogFile)
		case FlagOrientation:
			cfg.Grid.Orientation, err = fs.GetString(FlagOrientation)
		case FlagRadius:
			cfg.Grid.InscribedRadius, err = fs.GetFloat64(FlagRadius)
		case FlagSubdivision:
			cfg.Mesh.Subdivision, err = fs.GetInt(FlagSubdivision)
		case FlagShape:
			cfg.Tiles.Shape, err = fs.GetString(FlagShape)
		case FlagTiles:
			cfg.Tiles.Radius, err = fs.GetInt(FlagTiles)
		case FlagSeed:
			cfg.Tiles.Seed, err = fs.GetInt64(FlagSeed)
		case FlagFormat:
			cfg.Output.Format, err = fs.GetString(FlagFormat)
		case FlagOutput:
			cfg.Output.Path, err = fs.GetString(FlagOutput)
		}
	})
	if err != nil {
		return fmt.Errorf("applying flags: %w", err)
	}
	return nil
}
