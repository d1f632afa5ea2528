package hexgrid

import (
	"fmt"
	"math"
)

// cos30 is the ratio between the inscribed and described radius.
var cos30 = math.Cos(math.Pi / 6)

// Config describes a grid: its orientation and the size of one hexagon.
// Build it with NewConfig; the zero value is invalid.
type Config struct {
	orientation Orientation
	inscribed   float64
	layout      *layout
}

// NewConfig returns a grid configuration. The inscribed radius is the distance
// from a hex center to the midpoint of an edge and must be positive.
func NewConfig(orientation Orientation, inscribedRadius float64) (Config, error) {
	l, ok := orientation.layout()
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown orientation %s", ErrConfiguration, orientation)
	}
	if !(inscribedRadius > 0) || math.IsInf(inscribedRadius, 0) {
		return Config{}, fmt.Errorf("%w: inscribed radius must be positive and finite, got %v",
			ErrConfiguration, inscribedRadius)
	}
	return Config{
		orientation: orientation,
		inscribed:   inscribedRadius,
		layout:      l,
	}, nil
}

// Validate returns ErrConfiguration for a Config that was not built by NewConfig.
func (c Config) Validate() error {
	if c.layout == nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, c)
	}
	return nil
}

// Orientation returns the grid orientation.
func (c Config) Orientation() Orientation { return c.orientation }

// InscribedRadius returns the distance from a center to an edge midpoint.
func (c Config) InscribedRadius() float64 { return c.inscribed }

// DescribedRadius returns the distance from a center to a corner, which is
// also the side length.
func (c Config) DescribedRadius() float64 { return c.inscribed / cos30 }

// HorizontalOffset returns the horizontal distance between the centers of
// two hexes in adjacent columns.
func (c Config) HorizontalOffset() float64 {
	return c.DescribedRadius() * c.policy().f0
}

// VerticalOffset returns the vertical distance between the centers of two
// hexes in adjacent rows.
func (c Config) VerticalOffset() float64 {
	return c.DescribedRadius() * c.policy().f3
}

// AngleToFirstNeighbor returns the angle in radians from a hex center to the
// center of neighbor 0: zero for Pointy grids, 30 degrees for Flat grids.
func (c Config) AngleToFirstNeighbor() float64 {
	return c.policy().firstNeighborAngle
}

// policy returns the orientation layout. Using a Config that did not come
// from NewConfig is a programming error.
func (c Config) policy() *layout {
	if c.layout == nil {
		panic(fmt.Sprintf("hexgrid: use of unconfigured %s", c))
	}
	return c.layout
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("Config(%s, inscribed=%g)", c.orientation, c.inscribed)
}
