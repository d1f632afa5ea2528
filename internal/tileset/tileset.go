// Package tileset builds ordered hex collections for mesh generation.
package tileset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"
	"go.uber.org/zap"

	"github.com/Faultbox/hexgrid/internal/config"
	"github.com/Faultbox/hexgrid/internal/logger"
	"github.com/Faultbox/hexgrid/pkg/hexgrid"
)

var (
	// ErrUnknownShape is returned for a shape name Build does not know.
	ErrUnknownShape = errors.New("unknown tile set shape")
	// ErrInvalidSize is returned for negative radii or dimensions.
	ErrInvalidSize = errors.New("invalid tile set size")
)

// Shape names accepted by Build.
const (
	ShapeHexagon   = "hexagon"
	ShapeRectangle = "rectangle"
	ShapeIsland    = "island"
)

// Hexagon returns every hex within radius steps of center, center first,
// followed by each ring in turn. A radius of zero yields just the center.
func Hexagon(sys *hexgrid.System, center hexgrid.Cubic, radius int) ([]hexgrid.Cubic, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrInvalidSize, radius)
	}
	out := make([]hexgrid.Cubic, 0, HexagonCount(radius))
	return slices.AppendSeq(out, hexgrid.Area(sys, center, radius+1)), nil
}

// HexagonCount returns how many hexes Hexagon yields for radius.
func HexagonCount(radius int) int {
	return 1 + 3*radius*(radius+1)
}

// Rectangle returns a width by height block of offset coordinates in row
// order, starting at the origin.
func Rectangle(width, height int) ([]hexgrid.Offset, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	out := make([]hexgrid.Offset, 0, width*height)
	for y := range height {
		for x := range width {
			out = append(out, hexgrid.Offset{X: x, Y: y})
		}
	}
	return out, nil
}

// IslandParams controls noise island generation.
type IslandParams struct {
	Radius      int     // Hexes beyond this distance from the origin are never land
	Seed        int64   // Noise seed; equal seeds give equal islands
	Threshold   float64 // Minimum shaped noise value (0..1) for a hex to be kept
	Octaves     int     // Noise layers, at least 1
	Frequency   float64 // Base frequency in hexes
	Persistence float64 // Amplitude falloff per octave; zero means 0.5
}

// Island returns the hexes of a hexagon around the origin whose octave noise,
// sampled at the hex center and faded towards the rim, exceeds the threshold.
// Order matches Hexagon.
func Island(sys *hexgrid.System, p IslandParams) ([]hexgrid.Cubic, error) {
	if p.Octaves < 1 {
		return nil, fmt.Errorf("%w: octaves %d", ErrInvalidSize, p.Octaves)
	}
	all, err := Hexagon(sys, hexgrid.Cubic{}, p.Radius)
	if err != nil {
		return nil, err
	}
	if p.Persistence == 0 {
		p.Persistence = 0.5
	}

	noise := opensimplex.NewNormalized(p.Seed)

	// Sample in units of hex spacing so the island does not depend on scale.
	spacing := 2 * sys.Config().InscribedRadius()
	rim := float64(p.Radius+1) * spacing

	land := all[:0]
	for _, h := range all {
		c := hexgrid.Center(sys, h)
		value := octaveNoise(noise, c.X/spacing, c.Y/spacing, p.Octaves, p.Frequency, p.Persistence)

		falloff := 1 - math.Pow(c.Length()/rim, 3)
		if value*max(falloff, 0) > p.Threshold {
			land = append(land, h)
		}
	}

	logger.Debug("island generated",
		zap.Int("radius", p.Radius),
		zap.Int64("seed", p.Seed),
		zap.Int("land", len(land)),
		zap.Int("candidates", HexagonCount(p.Radius)))

	return land, nil
}

// octaveNoise layers octaves of noise, normalized back into 0..1.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for range octaves {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Build returns the tile set described by cfg as cubic coordinates.
func Build(sys *hexgrid.System, cfg config.TilesConfig) ([]hexgrid.Cubic, error) {
	switch strings.ToLower(cfg.Shape) {
	case ShapeHexagon:
		return Hexagon(sys, hexgrid.Cubic{}, cfg.Radius)
	case ShapeRectangle:
		offsets, err := Rectangle(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		out := make([]hexgrid.Cubic, len(offsets))
		for i, o := range offsets {
			out[i] = sys.OffsetToCubic(o)
		}
		return out, nil
	case ShapeIsland:
		return Island(sys, IslandParams{
			Radius:    cfg.Radius,
			Seed:      cfg.Seed,
			Threshold: cfg.Threshold,
			Octaves:   cfg.Octaves,
			Frequency: cfg.Frequency,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, cfg.Shape)
	}
}
