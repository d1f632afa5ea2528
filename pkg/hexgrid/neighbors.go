package hexgrid

import (
	"fmt"
	"iter"

	"deedles.dev/xiter"

	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// Directions holds the six axial neighbor deltas in index order:
// E, NE, NW, W, SW, SE. They do not depend on the orientation.
var Directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// cubicDirections is Directions in cubic form.
var cubicDirections = func() [6]Cubic {
	var out [6]Cubic
	for i, d := range Directions {
		out[i] = d.Cubic()
	}
	return out
}()

// ringStartDirection is the direction walked from the center to reach the
// first hex of a ring.
const ringStartDirection = 4

// Neighbor returns the neighbor of a in direction index (taken modulo 6).
func (a Axial) Neighbor(index int) Axial {
	return a.Add(Directions[normalizeIndex(index)])
}

// Neighbor returns the neighbor of c in direction index (taken modulo 6).
func (c Cubic) Neighbor(index int) Cubic {
	return c.Add(cubicDirections[normalizeIndex(index)])
}

// OffsetNeighbor returns the neighbor of o in direction index (taken modulo 6).
// The delta depends on the orientation and on whether o's row (Pointy) or
// column (Flat) is shifted.
func (s *System) OffsetNeighbor(o Offset, index int) Offset {
	l := s.policy()
	line := o.X
	if l.pointy {
		line = o.Y
	}
	shifted := 0
	if l.isShifted(line) {
		shifted = 1
	}
	return o.Add(l.offsetDeltas[shifted][normalizeIndex(index)])
}

// Neighbor returns the neighbor of c in direction index (taken modulo 6).
func Neighbor[C Coord](s *System, c C, index int) C {
	switch v := any(c).(type) {
	case Offset:
		return any(s.OffsetNeighbor(v, index)).(C)
	case Axial:
		return any(v.Neighbor(index)).(C)
	case Cubic:
		return any(v.Neighbor(index)).(C)
	}
	panic("hexgrid: unreachable coordinate kind")
}

// Neighbors yields the six neighbors of c in direction order.
func Neighbors[C Coord](s *System, c C) iter.Seq[C] {
	return func(yield func(C) bool) {
		for i := range len(Directions) {
			if !yield(Neighbor(s, c, i)) {
				return
			}
		}
	}
}

// IsNeighbors reports whether a and b are adjacent.
func IsNeighbors[C Coord](s *System, a, b C) bool {
	for n := range Neighbors(s, a) {
		if n == b {
			return true
		}
	}
	return false
}

// NeighborIndex returns the direction index leading from center to neighbor.
func NeighborIndex[C Coord](s *System, center, neighbor C) (int, error) {
	for i, n := range xiter.Enumerate(Neighbors(s, center)) {
		if n == neighbor {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v is not adjacent to %v on %s",
		ErrNeighborNotFound, neighbor, center, s.cfg)
}

// Ring yields every hex exactly radius steps from center. Radius 0 yields
// the center alone and a negative radius yields nothing. The ring starts
// radius steps along direction 4 and walks directions 0 through 5.
func Ring[C Coord](s *System, center C, radius int) iter.Seq[C] {
	return func(yield func(C) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(center)
			return
		}

		current := center
		for range radius {
			current = Neighbor(s, current, ringStartDirection)
		}
		for dir := range len(Directions) {
			for range radius {
				if !yield(current) {
					return
				}
				current = Neighbor(s, current, dir)
			}
		}
	}
}

// Area yields every hex fewer than radius steps from center, ring by ring
// from the center outward. The ring at radius itself is not included.
func Area[C Coord](s *System, center C, radius int) iter.Seq[C] {
	return func(yield func(C) bool) {
		for r := range radius {
			for c := range Ring(s, center, r) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// PointBetweenNeighbours returns the midpoint of the edge shared by a and b.
func PointBetweenNeighbours[C Coord](s *System, a, b C) (hmath.Vec2, error) {
	if !IsNeighbors(s, a, b) {
		return hmath.Vec2{}, fmt.Errorf("%w: %v and %v on %s", ErrNotNeighbors, a, b, s.cfg)
	}
	return Center(s, a).Mid(Center(s, b)), nil
}

// Distance returns the number of steps between a and b.
func Distance[C Coord](s *System, a, b C) int {
	return CubeDistance(ToCubic(s, a), ToCubic(s, b))
}
