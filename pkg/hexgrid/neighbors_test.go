package hexgrid

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighborPointyOddOrigin(t *testing.T) {
	s := mustSystem(t, PointyOdd, 1.0)
	require.Equal(t, Offset{1, 0}, Neighbor(s, Offset{0, 0}, 0))
	require.Equal(t, Offset{1, 0}, s.OffsetNeighbor(Offset{0, 0}, 0))
}

func TestOffsetNeighborTables(t *testing.T) {
	tests := []struct {
		orientation Orientation
		in          Offset
		want        [6]Offset
	}{
		{PointyOdd, Offset{2, 2}, [6]Offset{{3, 2}, {2, 1}, {1, 1}, {1, 2}, {1, 3}, {2, 3}}},
		{PointyOdd, Offset{2, 1}, [6]Offset{{3, 1}, {3, 0}, {2, 0}, {1, 1}, {2, 2}, {3, 2}}},
		{PointyEven, Offset{2, 2}, [6]Offset{{3, 2}, {3, 1}, {2, 1}, {1, 2}, {2, 3}, {3, 3}}},
		{FlatOdd, Offset{2, 2}, [6]Offset{{3, 2}, {3, 1}, {2, 1}, {1, 1}, {1, 2}, {2, 3}}},
		{FlatOdd, Offset{1, 2}, [6]Offset{{2, 3}, {2, 2}, {1, 1}, {0, 2}, {0, 3}, {1, 3}}},
		{FlatEven, Offset{2, 2}, [6]Offset{{3, 3}, {3, 2}, {2, 1}, {1, 2}, {1, 3}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.orientation.String()+"/"+tt.in.String(), func(t *testing.T) {
			s := mustSystem(t, tt.orientation, 1)
			require.Equal(t, tt.want[:], slices.Collect(Neighbors(s, tt.in)))
		})
	}
}

func TestOffsetNeighborsMatchCubic(t *testing.T) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			s := mustSystem(t, o, 1)
			for x := -7; x <= 7; x++ {
				for y := -7; y <= 7; y++ {
					off := Offset{x, y}
					c := s.OffsetToCubic(off)
					for i := range 6 {
						want := s.CubicToOffset(c.Neighbor(i))
						require.Equal(t, want, Neighbor(s, off, i), "%v direction %d", off, i)
					}
				}
			}
		})
	}
}

func TestNeighborIndexNormalization(t *testing.T) {
	s := mustSystem(t, FlatEven, 1)
	a := Axial{2, -1}

	tests := []struct {
		index int
		want  int
	}{
		{-1, 5},
		{-6, 0},
		{-13, 5},
		{6, 0},
		{7, 1},
		{20, 2},
	}

	for _, tt := range tests {
		require.Equal(t, Neighbor(s, a, tt.want), Neighbor(s, a, tt.index), "index %d", tt.index)
		require.Equal(t, Neighbor(s, s.AxialToOffset(a), tt.want), Neighbor(s, s.AxialToOffset(a), tt.index))
	}
}

// forEachOrientation runs fn as a subtest against every orientation.
func forEachOrientation(t *testing.T, fn func(t *testing.T, s *System)) {
	for _, o := range Orientations {
		t.Run(o.String(), func(t *testing.T) {
			fn(t, mustSystem(t, o, 1))
		})
	}
}

func TestNeighborSymmetry(t *testing.T) {
	forEachOrientation(t, func(t *testing.T, s *System) {
		for q := -4; q <= 4; q++ {
			for r := -4; r <= 4; r++ {
				c := NewCubic(q, r)
				checkSymmetric(t, s, c)
				checkSymmetric(t, s, c.Axial())
				checkSymmetric(t, s, s.CubicToOffset(c))
			}
		}
	})
}

func checkSymmetric[C Coord](t *testing.T, s *System, a C) {
	t.Helper()
	seen := map[C]bool{}
	for b := range Neighbors(s, a) {
		require.True(t, IsNeighbors(s, b, a), "%v -> %v", a, b)
		require.True(t, IsNeighbors(s, a, b))
		require.Equal(t, 1, Distance(s, a, b))
		seen[b] = true
	}
	require.Len(t, seen, 6)
	require.False(t, IsNeighbors(s, a, a))
}

func TestNeighborsEarlyStop(t *testing.T) {
	s := mustSystem(t, PointyEven, 1)
	seq := Neighbors(s, Offset{4, 5})

	var first []Offset
	for n := range seq {
		first = append(first, n)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)

	// Restarting yields the full sequence again.
	all := slices.Collect(seq)
	require.Len(t, all, 6)
	require.Equal(t, first, all[:2])
}

func TestNeighborIndex(t *testing.T) {
	forEachOrientation(t, func(t *testing.T, s *System) {
		center := Offset{-3, 4}
		for i := range 6 {
			got, err := NeighborIndex(s, center, Neighbor(s, center, i))
			require.NoError(t, err)
			require.Equal(t, i, got)
		}

		_, err := NeighborIndex(s, center, center)
		require.ErrorIs(t, err, ErrNeighborNotFound)

		_, err = NeighborIndex(s, Axial{}, Axial{2, 0})
		require.ErrorIs(t, err, ErrNeighborNotFound)
		require.Contains(t, err.Error(), "Axial(2, 0)")
	})
}

func TestRing(t *testing.T) {
	forEachOrientation(t, func(t *testing.T, s *System) {
		for radius := 0; radius <= 5; radius++ {
			checkRing(t, s, Cubic{1, -3, 2}, radius)
			checkRing(t, s, Axial{-2, 0}, radius)
			checkRing(t, s, Offset{3, 3}, radius)
			checkRing(t, s, Offset{0, -1}, radius)
		}
	})
}

func checkRing[C Coord](t *testing.T, s *System, center C, radius int) {
	t.Helper()
	ring := slices.Collect(Ring(s, center, radius))

	want := 6 * radius
	if radius == 0 {
		want = 1
	}
	require.Len(t, ring, want)

	seen := map[C]bool{}
	for _, c := range ring {
		require.Equal(t, radius, Distance(s, center, c), "%v in ring %d of %v", c, radius, center)
		require.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
	}

	// Consecutive ring hexes are adjacent, including the wrap-around.
	if radius > 0 {
		for i, c := range ring {
			require.True(t, IsNeighbors(s, c, ring[(i+1)%len(ring)]))
		}
	}
}

func TestRingOrder(t *testing.T) {
	s := mustSystem(t, PointyOdd, 1)
	got := slices.Collect(Ring(s, Axial{}, 1))
	want := []Axial{{-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}}
	require.Equal(t, want, got)

	require.Equal(t, []Axial{{}}, slices.Collect(Ring(s, Axial{}, 0)))
	require.Empty(t, slices.Collect(Ring(s, Axial{}, -1)))
}

func TestArea(t *testing.T) {
	forEachOrientation(t, func(t *testing.T, s *System) {
		center := Offset{2, -5}
		require.Empty(t, slices.Collect(Area(s, center, 0)))
		require.Equal(t, []Offset{center}, slices.Collect(Area(s, center, 1)))

		for radius := 1; radius <= 6; radius++ {
			area := slices.Collect(Area(s, center, radius))
			require.Len(t, area, 1+3*radius*(radius-1))

			seen := map[Offset]bool{}
			for _, c := range area {
				require.Less(t, Distance(s, center, c), radius)
				seen[c] = true
			}
			require.Len(t, seen, len(area))

			// The ring at radius itself is excluded.
			for c := range Ring(s, center, radius) {
				require.False(t, seen[c])
			}
		}
	})
}

func TestAreaEarlyStop(t *testing.T) {
	s := mustSystem(t, FlatOdd, 1)
	next, stop := iter.Pull(Area(s, Cubic{}, 3))
	defer stop()

	first, ok := next()
	require.True(t, ok)
	require.Equal(t, Cubic{}, first)
}

func TestPointBetweenNeighbours(t *testing.T) {
	forEachOrientation(t, func(t *testing.T, s *System) {
		inscribed := s.Config().InscribedRadius()
		a := Offset{1, 1}
		for b := range Neighbors(s, a) {
			p, err := PointBetweenNeighbours(s, a, b)
			require.NoError(t, err)
			require.InDelta(t, inscribed, p.Distance(Center(s, a)), 1e-9)
			require.InDelta(t, inscribed, p.Distance(Center(s, b)), 1e-9)

			// The midpoint lies on the shared edge, between two shared corners.
			found := 0
			for _, c := range Corners(s, a) {
				if d := c.Distance(p); d < s.Config().DescribedRadius()/2+1e-9 {
					found++
				}
			}
			require.Equal(t, 2, found)
		}
	})
}

func TestPointBetweenNotNeighbours(t *testing.T) {
	s := mustSystem(t, PointyOdd, 1)

	_, err := PointBetweenNeighbours(s, Offset{0, 0}, Offset{2, 0})
	require.ErrorIs(t, err, ErrNotNeighbors)

	_, err = PointBetweenNeighbours(s, Cubic{}, Cubic{})
	require.ErrorIs(t, err, ErrNotNeighbors)

	_, err = PointBetweenNeighbours(s, Axial{0, 0}, Axial{1, 1})
	require.ErrorIs(t, err, ErrNotNeighbors)
	require.Contains(t, err.Error(), "PointyOdd")
}
