package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// layout holds everything that differs between orientations. It is resolved
// once per Config so queries never switch on the orientation themselves.
type layout struct {
	pointy bool

	// shiftedParity is the parity (0 or 1) of the rows (Pointy) or columns
	// (Flat) that are pushed half a hex in offset addressing.
	shiftedParity int

	// Axial to point, in units of the described radius:
	// x = f0*q + f1*r, y = f2*q + f3*r.
	f0, f1, f2, f3 float64

	// Point to axial, the inverse of the matrix above.
	b0, b1, b2, b3 float64

	// cornerAngle is the angle of corner 0 in radians.
	cornerAngle float64

	// firstNeighborAngle is the angle from a hex center to neighbor 0 in radians.
	firstNeighborAngle float64

	// offsetDeltas[shifted] is the neighbor table for unshifted (0) and
	// shifted (1) lines.
	offsetDeltas *[2][6]Offset
}

// Pointy lines are rows. A shifted row sits half a hex to the right.
var pointyOffsetDeltas = [2][6]Offset{
	{{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}},
	{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}},
}

// Flat lines are columns. A shifted column sits half a hex lower.
var flatOffsetDeltas = [2][6]Offset{
	{{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, 1}},
	{{1, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}},
}

var pointyLayout = layout{
	pointy:             true,
	f0:                 sqrt3,
	f1:                 sqrt3 / 2,
	f3:                 1.5,
	b0:                 sqrt3 / 3,
	b1:                 -1.0 / 3,
	b3:                 2.0 / 3,
	cornerAngle:        -math.Pi / 6,
	firstNeighborAngle: 0,
	offsetDeltas:       &pointyOffsetDeltas,
}

var flatLayout = layout{
	pointy:             false,
	f0:                 1.5,
	f2:                 sqrt3 / 2,
	f3:                 sqrt3,
	b0:                 2.0 / 3,
	b2:                 -1.0 / 3,
	b3:                 sqrt3 / 3,
	cornerAngle:        0,
	firstNeighborAngle: math.Pi / 6,
	offsetDeltas:       &flatOffsetDeltas,
}

var layouts = func() map[Orientation]*layout {
	withParity := func(base layout, parity int) *layout {
		l := base
		l.shiftedParity = parity
		return &l
	}
	return map[Orientation]*layout{
		PointyOdd:  withParity(pointyLayout, 1),
		PointyEven: withParity(pointyLayout, 0),
		FlatOdd:    withParity(flatLayout, 1),
		FlatEven:   withParity(flatLayout, 0),
	}
}()

func (o Orientation) layout() (*layout, bool) {
	l, ok := layouts[o]
	return l, ok
}

// shiftSign is -1 when odd lines are shifted and +1 when even lines are.
// The offset formulas are line + shiftSign*(line&1), which is always even.
func (l *layout) shiftSign() int {
	if l.shiftedParity == 1 {
		return -1
	}
	return 1
}

// isShifted reports whether the line with the given index is shifted.
func (l *layout) isShifted(line int) bool {
	return line&1 == l.shiftedParity
}
