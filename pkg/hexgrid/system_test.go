package hexgrid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

func TestOffsetRoundTrip(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 1)
			for x := -12; x <= 12; x++ {
				for y := -12; y <= 12; y++ {
					off := Offset{x, y}
					c := s.OffsetToCubic(off)
					require.True(t, c.Valid(), "%v -> %v", off, c)
					require.Equal(t, off, s.CubicToOffset(c))
					require.Equal(t, off, s.AxialToOffset(s.OffsetToAxial(off)))
					require.Equal(t, off, FromCubic[Offset](s, ToCubic(s, off)))
				}
			}
		})
	}
}

func TestCubicRoundTrip(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 1)
			for q := -8; q <= 8; q++ {
				for r := -8; r <= 8; r++ {
					c := NewCubic(q, r)
					require.Equal(t, c, s.OffsetToCubic(s.CubicToOffset(c)))
					require.Equal(t, c, s.AxialToCubic(s.CubicToAxial(c)))
					require.Equal(t, c.Axial(), FromCubic[Axial](s, c))
					require.Equal(t, c, FromCubic[Cubic](s, c))
				}
			}
		})
	}
}

func TestOffsetToAxial(t *testing.T) {
	tests := []struct {
		orientation Orientation
		in          Offset
		want        Axial
	}{
		{PointyOdd, Offset{1, 1}, Axial{1, 1}},
		{PointyOdd, Offset{0, -1}, Axial{1, -1}},
		{PointyOdd, Offset{3, 2}, Axial{2, 2}},
		{PointyEven, Offset{1, 1}, Axial{0, 1}},
		{PointyEven, Offset{0, -1}, Axial{0, -1}},
		{FlatOdd, Offset{1, 1}, Axial{1, 1}},
		{FlatOdd, Offset{-1, 0}, Axial{-1, 1}},
		{FlatEven, Offset{1, 1}, Axial{1, 0}},
		{FlatEven, Offset{2, 3}, Axial{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String()+"/"+tt.in.String(), func(t *testing.T) {
			s := mustSystem(t, tt.orientation, 1)
			require.Equal(t, tt.want, s.OffsetToAxial(tt.in))
		})
	}
}

func TestCenter(t *testing.T) {
	side := 2 / math.Sqrt(3)

	tests := []struct {
		orientation Orientation
		in          Axial
		want        hmath.Vec2
	}{
		{PointyOdd, Axial{0, 0}, hmath.Vec2{}},
		{PointyOdd, Axial{1, 0}, hmath.Vec2{X: 2, Y: 0}},
		{PointyEven, Axial{0, 1}, hmath.Vec2{X: 1, Y: 1.5 * side}},
		{PointyOdd, Axial{2, -3}, hmath.Vec2{X: side * (math.Sqrt(3)*2 - math.Sqrt(3)/2*3), Y: side * -4.5}},
		{FlatOdd, Axial{1, 0}, hmath.Vec2{X: 1.5 * side, Y: 1}},
		{FlatEven, Axial{0, 1}, hmath.Vec2{X: 0, Y: 2}},
		{FlatOdd, Axial{-2, 1}, hmath.Vec2{X: -3 * side, Y: side * (-math.Sqrt(3) + math.Sqrt(3))}},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String()+"/"+tt.in.String(), func(t *testing.T) {
			s := mustSystem(t, tt.orientation, 1)
			got := Center(s, tt.in)
			require.InDelta(t, tt.want.X, got.X, 1e-9)
			require.InDelta(t, tt.want.Y, got.Y, 1e-9)

			// Every coordinate kind maps to the same center.
			require.Equal(t, got, Center(s, tt.in.Cubic()))
			require.Equal(t, got, Center(s, s.AxialToOffset(tt.in)))
		})
	}
}

func TestPointToCubic(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 0.75)
			inner := 0.95 * s.Config().InscribedRadius()

			for q := -6; q <= 6; q++ {
				for r := -6; r <= 6; r++ {
					c := NewCubic(q, r)
					center := s.CubicCenter(c)
					require.Equal(t, c, s.PointToCubic(center))
					require.Equal(t, c.Axial(), s.PointToAxial(center))
					require.Equal(t, s.CubicToOffset(c), s.PointToOffset(center))

					// Points just inside each edge stay in the hex.
					for i := range 6 {
						edge := s.CubicCenter(Neighbor(s, c, i)).Sub(center).Normalize()
						p := center.Add(edge.Scale(inner))
						require.Equal(t, c, s.PointToCubic(p), "edge %d of %v", i, c)
					}
				}
			}
		})
	}
}

func TestCorners(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 1)
			side := s.Config().DescribedRadius()
			off := Offset{3, -2}
			center := Center(s, off)
			corners := Corners(s, off)

			for i, p := range corners {
				require.InDelta(t, side, p.Distance(center), 1e-9, "corner %d", i)
				next := corners[(i+1)%6]
				require.InDelta(t, side, p.Distance(next), 1e-9, "edge %d", i)
				require.Equal(t, p, Corner(s, off, i+6))
				require.Equal(t, p, Corner(s, off, i-6))
			}

			angle := math.Atan2(corners[0].Y-center.Y, corners[0].X-center.X)
			if o.IsPointy() {
				require.InDelta(t, -math.Pi/6, angle, 1e-9)
			} else {
				require.InDelta(t, 0, angle, 1e-9)
			}
		})
	}
}

func TestCornersShared(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 1)
			a := Axial{1, 2}

			for i := range 6 {
				b := Neighbor(s, a, i)
				shared := 0
				for _, p := range Corners(s, a) {
					for _, q := range Corners(s, b) {
						if p.ApproxEqual(q, 1e-9) {
							shared++
						}
					}
				}
				require.Equal(t, 2, shared, "neighbor %d", i)
			}
		})
	}
}

func TestUnbuiltSystem(t *testing.T) {
	var nilSystem *System
	require.ErrorIs(t, nilSystem.Validate(), ErrConfiguration)
	require.ErrorIs(t, new(System).Validate(), ErrConfiguration)
	require.NoError(t, mustSystem(t, FlatEven, 1).Validate())

	calls := map[string]func(s *System){
		"OffsetToCubic":  func(s *System) { s.OffsetToCubic(Offset{X: 1, Y: 1}) },
		"CubicToOffset":  func(s *System) { s.CubicToOffset(Cubic{}) },
		"PointToCubic":   func(s *System) { s.PointToCubic(hmath.Vec2{X: 1}) },
		"CubicCenter":    func(s *System) { s.CubicCenter(Cubic{}) },
		"CubicCorner":    func(s *System) { s.CubicCorner(Cubic{}, 0) },
		"OffsetNeighbor": func(s *System) { s.OffsetNeighbor(Offset{}, 0) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "expected an error panic")
				require.True(t, errors.Is(err, ErrConfiguration), err.Error())
			}()
			call(new(System))
		})
	}
}
