package hexmesh

import (
	"errors"
	"iter"
	"slices"

	"deedles.dev/xiter"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// ErrNilSystem is returned when no coordinate system is supplied.
var ErrNilSystem = errors.New("nil coordinate system")

// Sizes returns the total vertex and index counts for n hexagons at
// subdivision s.
func Sizes(n, s int) (vertices, indices int) {
	return n * VertexCount(s), n * IndexCount(s)
}

// Generate triangulates every hex in hexes, in order, into one vertex and
// index stream. Hex k owns vertices [k*VertexCount(s), (k+1)*VertexCount(s))
// and slots [k*IndexCount(s), (k+1)*IndexCount(s)). A nil sink discards its
// output. Arguments are validated before anything is written.
func Generate[C hexgrid.Coord](sys *hexgrid.System, hexes []C, s int,
	vertices VertexSink, indices IndexSink) error {

	_, err := GenerateSeq(sys, slices.Values(hexes), s, vertices, indices)
	return err
}

// GenerateSeq is Generate for a sequence of hexes. It returns the number of
// hexes written.
func GenerateSeq[C hexgrid.Coord](sys *hexgrid.System, hexes iter.Seq[C], s int,
	vertices VertexSink, indices IndexSink) (int, error) {

	if sys == nil {
		return 0, ErrNilSystem
	}
	if err := checkSubdivision(s); err != nil {
		return 0, err
	}
	if vertices == nil {
		vertices = func(int, hmath.Vec2) {}
	}
	if indices == nil {
		indices = func(int, int) {}
	}

	cfg := sys.Config()
	nv, ni := VertexCount(s), IndexCount(s)

	count := 0
	for k, h := range xiter.Enumerate(hexes) {
		center := hexgrid.Center(sys, h)
		emitHexagon(cfg, s, center, k*nv, k*ni, vertices, indices)
		count = k + 1
	}
	return count, nil
}
