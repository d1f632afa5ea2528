package hexgrid

import (
	"fmt"
	"math"

	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// System converts between coordinate kinds and continuous positions for one
// grid configuration. Only values returned by NewSystem are usable; methods
// on any other System panic with an error wrapping ErrConfiguration.
type System struct {
	cfg  Config
	l    *layout
	side float64
}

// NewSystem returns a coordinate system for cfg.
func NewSystem(cfg Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &System{
		cfg:  cfg,
		l:    cfg.layout,
		side: cfg.DescribedRadius(),
	}, nil
}

// Config returns the grid configuration.
func (s *System) Config() Config { return s.cfg }

// Validate reports whether s was built by NewSystem.
func (s *System) Validate() error {
	if s == nil || s.l == nil {
		return fmt.Errorf("%w: coordinate system not created by NewSystem", ErrConfiguration)
	}
	return nil
}

// policy returns the orientation layout, panicking on an unbuilt System.
func (s *System) policy() *layout {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s.l
}

// OffsetToCubic converts an offset coordinate to cubic.
func (s *System) OffsetToCubic(o Offset) Cubic {
	l := s.policy()
	sign := l.shiftSign()
	if l.pointy {
		q := o.X - (o.Y+sign*(o.Y&1))/2
		return NewCubic(q, o.Y)
	}
	r := o.Y - (o.X+sign*(o.X&1))/2
	return NewCubic(o.X, r)
}

// CubicToOffset converts a cubic coordinate to offset.
func (s *System) CubicToOffset(c Cubic) Offset {
	l := s.policy()
	sign := l.shiftSign()
	q, r := c.X, c.Z
	if l.pointy {
		return Offset{X: q + (r+sign*(r&1))/2, Y: r}
	}
	return Offset{X: q, Y: r + (q+sign*(q&1))/2}
}

// AxialToCubic converts an axial coordinate to cubic.
func (s *System) AxialToCubic(a Axial) Cubic { return a.Cubic() }

// CubicToAxial converts a cubic coordinate to axial.
func (s *System) CubicToAxial(c Cubic) Axial { return c.Axial() }

// OffsetToAxial converts an offset coordinate to axial.
func (s *System) OffsetToAxial(o Offset) Axial {
	return s.OffsetToCubic(o).Axial()
}

// AxialToOffset converts an axial coordinate to offset.
func (s *System) AxialToOffset(a Axial) Offset {
	return s.CubicToOffset(a.Cubic())
}

// PointToCubic returns the hex containing the continuous position p.
func (s *System) PointToCubic(p hmath.Vec2) Cubic {
	l := s.policy()
	x, y := p.X/s.side, p.Y/s.side
	q := l.b0*x + l.b1*y
	r := l.b2*x + l.b3*y
	return RoundCubic(q, -q-r, r)
}

// PointToAxial returns the axial coordinate of the hex containing p.
func (s *System) PointToAxial(p hmath.Vec2) Axial {
	return s.PointToCubic(p).Axial()
}

// PointToOffset returns the offset coordinate of the hex containing p.
func (s *System) PointToOffset(p hmath.Vec2) Offset {
	return s.CubicToOffset(s.PointToCubic(p))
}

// CubicCenter returns the center of c in continuous space.
func (s *System) CubicCenter(c Cubic) hmath.Vec2 {
	l := s.policy()
	q, r := float64(c.X), float64(c.Z)
	return hmath.Vec2{
		X: s.side * (l.f0*q + l.f1*r),
		Y: s.side * (l.f2*q + l.f3*r),
	}
}

// CubicCorner returns corner index of c. The index is taken modulo 6.
func (s *System) CubicCorner(c Cubic, index int) hmath.Vec2 {
	angle := s.policy().cornerAngle + float64(normalizeIndex(index))*math.Pi/3
	return s.CubicCenter(c).Add(hmath.Polar(s.side, angle))
}

// ToCubic converts any coordinate kind to cubic.
func ToCubic[C Coord](s *System, c C) Cubic {
	switch v := any(c).(type) {
	case Offset:
		return s.OffsetToCubic(v)
	case Axial:
		return v.Cubic()
	case Cubic:
		return v
	}
	panic("hexgrid: unreachable coordinate kind")
}

// FromCubic converts a cubic coordinate to the requested kind.
func FromCubic[C Coord](s *System, c Cubic) C {
	var out C
	switch p := any(&out).(type) {
	case *Offset:
		*p = s.CubicToOffset(c)
	case *Axial:
		*p = c.Axial()
	case *Cubic:
		*p = c
	}
	return out
}

// Center returns the center of c in continuous space.
func Center[C Coord](s *System, c C) hmath.Vec2 {
	return s.CubicCenter(ToCubic(s, c))
}

// Corner returns corner index of c. Corner i lies at 60*i degrees from the
// +X axis toward +Y, minus 30 degrees on Pointy grids, one described radius
// from the center. The index is taken modulo 6.
func Corner[C Coord](s *System, c C, index int) hmath.Vec2 {
	return s.CubicCorner(ToCubic(s, c), index)
}

// Corners returns the six corners of c in index order.
func Corners[C Coord](s *System, c C) [6]hmath.Vec2 {
	cube := ToCubic(s, c)
	var out [6]hmath.Vec2
	for i := range out {
		out[i] = s.CubicCorner(cube, i)
	}
	return out
}
