// Package hexgrid provides coordinate conversions and adjacency queries for
// infinite hexagonal grids.
//
// A hex can be addressed three ways. Cubic is the canonical form and always
// satisfies X+Y+Z == 0. Axial is the (X, Z) projection of Cubic. Offset is
// column/row addressing whose meaning depends on the grid orientation.
//
// Continuous positions use a frame where Y grows downward, so direction 1
// (NE) has a negative Y component. Every conversion and query takes a
// [System], which is built once from a [Config] and is safe for concurrent
// use.
package hexgrid

import (
	"errors"
	"fmt"
	"strings"
)

// Grid errors.
var (
	ErrConfiguration    = errors.New("invalid grid configuration")
	ErrNotNeighbors     = errors.New("coordinates are not neighbors")
	ErrNeighborNotFound = errors.New("neighbor not found")
)

// Orientation selects corner-up (Pointy) or edge-up (Flat) hexagons together
// with which rows or columns are shifted in offset addressing.
type Orientation uint8

// Orientations. The zero value is not a valid orientation.
const (
	PointyOdd  Orientation = iota + 1 // Pointy top, odd rows shifted right
	PointyEven                        // Pointy top, even rows shifted right
	FlatOdd                           // Flat top, odd columns shifted down
	FlatEven                          // Flat top, even columns shifted down
)

// Orientations lists every valid orientation.
var Orientations = [...]Orientation{PointyOdd, PointyEven, FlatOdd, FlatEven}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case PointyOdd:
		return "PointyOdd"
	case PointyEven:
		return "PointyEven"
	case FlatOdd:
		return "FlatOdd"
	case FlatEven:
		return "FlatEven"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the four named orientations.
func (o Orientation) Valid() bool {
	_, ok := o.layout()
	return ok
}

// IsPointy reports whether hexagons have a corner pointing up.
func (o Orientation) IsPointy() bool {
	return o == PointyOdd || o == PointyEven
}

// ParseOrientation parses an orientation name. Case, dashes, underscores and
// spaces are ignored, so "pointy-odd", "PointyOdd" and "POINTY_ODD" are equal.
func ParseOrientation(s string) (Orientation, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))

	for _, o := range Orientations {
		if strings.ToLower(o.String()) == key {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", ErrConfiguration, s)
}

// normalizeIndex maps any direction or corner index into 0..5.
func normalizeIndex(index int) int {
	return ((index % 6) + 6) % 6
}
