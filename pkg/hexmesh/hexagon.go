// Package hexmesh triangulates hexagons and hex tile sets into flat vertex
// and index streams.
//
// A hexagon at subdivision level S is cut into 6*S*S equilateral triangles.
// Vertices are laid out in 2S+1 diagonal columns; column c holds 2S+1-|c|
// vertices. Each hexagon in a tile set gets its own vertices, so border
// vertices are duplicated and per-hexagon attributes stay independent.
package hexmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// Mesh errors.
var (
	ErrInvalidSubdivision = errors.New("subdivision must be at least 1")
)

// VertexSink receives vertex positions in increasing index order.
type VertexSink func(index int, position hmath.Vec2)

// IndexSink receives index buffer entries in increasing slot order. Every
// three consecutive slots form one counter-clockwise triangle.
type IndexSink func(slot, vertex int)

var (
	sin60 = math.Sin(math.Pi / 3)
	cot60 = 1 / math.Tan(math.Pi/3)
)

// VertexCount returns the number of vertices of one hexagon at subdivision s.
func VertexCount(s int) int {
	return 1 + 3*s*(s+1)
}

// IndexCount returns the number of index slots of one hexagon at subdivision s.
func IndexCount(s int) int {
	return 18 * s * s
}

// TriangleCount returns the number of triangles of one hexagon at subdivision s.
func TriangleCount(s int) int {
	return 6 * s * s
}

func checkSubdivision(s int) error {
	if s < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSubdivision, s)
	}
	return nil
}

// columnLength returns the number of vertices in diagonal column c.
func columnLength(s, c int) int {
	return 2*s + 1 - abs(c)
}

// columnRowMin returns the first row of diagonal column c. Columns on the
// negative side start higher so one side of the lattice follows a hexagon edge.
func columnRowMin(s, c int) int {
	if c < 0 {
		return -s - c
	}
	return -s
}

// Hexagon triangulates a single hexagon centered at center. Vertex and index
// values are shifted by vertexBase, slot numbers by slotBase.
func Hexagon(cfg hexgrid.Config, s int, center hmath.Vec2, vertexBase, slotBase int,
	vertices VertexSink, indices IndexSink) error {

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkSubdivision(s); err != nil {
		return err
	}
	emitHexagon(cfg, s, center, vertexBase, slotBase, vertices, indices)
	return nil
}

// emitHexagon writes one hexagon. Arguments must already be validated.
func emitHexagon(cfg hexgrid.Config, s int, center hmath.Vec2, vertexBase, slotBase int,
	vertices VertexSink, indices IndexSink) {

	rdq := cfg.DescribedRadius() / float64(s)
	angle := cfg.AngleToFirstNeighbor()

	vertex := vertexBase
	slot := slotBase
	triangle := func(a, b, c int) {
		indices(slot, a)
		indices(slot+1, b)
		indices(slot+2, c)
		slot += 3
	}

	for c := -s; c <= s; c++ {
		n := columnLength(s, c)
		rowMin := columnRowMin(s, c)

		// Distance from a vertex to the vertex with the same row in the next
		// column. Negative columns shrink downward, so the next column has
		// one extra vertex before that row.
		nextStride := n
		if c < 0 {
			nextStride++
		}

		// Distance back to the vertex one row lower in the previous column.
		prevStride := 0
		if c > -s {
			prevStride = columnLength(s, c-1)
			if c > 0 {
				prevStride--
			}
		}

		for i := range n {
			row := rowMin + i
			x := sin60 * rdq * float64(c)
			z := x*cot60 + rdq*float64(row)
			vertices(vertex, hmath.Vec2{X: x, Y: z}.Rotate(angle).Add(center))

			if i < n-1 {
				if c < s {
					triangle(vertex, vertex+nextStride, vertex+1)
				}
				if c > -s {
					triangle(vertex, vertex+1, vertex-prevStride)
				}
			}
			vertex++
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
