package hexgrid

import (
	"fmt"
	"math"
)

// Coord is the set of coordinate kinds every generic query accepts.
type Coord interface {
	Offset | Axial | Cubic
}

// Offset addresses a hex by column X and row Y.
type Offset struct {
	X, Y int
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.X + other.X, o.Y + other.Y}
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{o.X - other.X, o.Y - other.Y}
}

func (o Offset) String() string {
	return fmt.Sprintf("Offset(%d, %d)", o.X, o.Y)
}

// Axial addresses a hex by the Q and R axes.
type Axial struct {
	Q, R int
}

// Add returns a + other.
func (a Axial) Add(other Axial) Axial {
	return Axial{a.Q + other.Q, a.R + other.R}
}

// Sub returns a - other.
func (a Axial) Sub(other Axial) Axial {
	return Axial{a.Q - other.Q, a.R - other.R}
}

// Scale returns a * k.
func (a Axial) Scale(k int) Axial {
	return Axial{a.Q * k, a.R * k}
}

// Cubic returns the cubic form of a.
func (a Axial) Cubic() Cubic {
	return Cubic{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

func (a Axial) String() string {
	return fmt.Sprintf("Axial(%d, %d)", a.Q, a.R)
}

// Cubic addresses a hex with three axes constrained by X+Y+Z == 0.
type Cubic struct {
	X, Y, Z int
}

// NewCubic returns the cubic coordinate with the given X and Z; Y is derived.
func NewCubic(x, z int) Cubic {
	return Cubic{X: x, Y: -x - z, Z: z}
}

// RoundCubic returns the hex containing the fractional cubic position
// (x, y, z). Each component is rounded independently and the one with the
// largest rounding error is recomputed from the other two.
func RoundCubic(x, y, z float64) Cubic {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cubic{X: int(rx), Y: int(ry), Z: int(rz)}
}

// Valid reports whether c satisfies X+Y+Z == 0.
func (c Cubic) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Add returns c + other.
func (c Cubic) Add(other Cubic) Cubic {
	return Cubic{c.X + other.X, c.Y + other.Y, c.Z + other.Z}
}

// Sub returns c - other.
func (c Cubic) Sub(other Cubic) Cubic {
	return Cubic{c.X - other.X, c.Y - other.Y, c.Z - other.Z}
}

// Scale returns c * k.
func (c Cubic) Scale(k int) Cubic {
	return Cubic{c.X * k, c.Y * k, c.Z * k}
}

// Axial returns the axial projection of c.
func (c Cubic) Axial() Axial {
	return Axial{Q: c.X, R: c.Z}
}

// Length returns the number of steps from the origin to c.
func (c Cubic) Length() int {
	return (abs(c.X) + abs(c.Y) + abs(c.Z)) / 2
}

func (c Cubic) String() string {
	return fmt.Sprintf("Cubic(%d, %d, %d)", c.X, c.Y, c.Z)
}

// CubeDistance returns the number of steps between a and b.
func CubeDistance(a, b Cubic) int {
	return a.Sub(b).Length()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
