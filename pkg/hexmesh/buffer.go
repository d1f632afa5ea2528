package hexmesh

import (
	"fmt"
	"math"

	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min hmath.Vec2
	Max hmath.Vec2
}

// EmptyBounds returns bounds containing nothing. The first point added
// becomes both corners.
func EmptyBounds() Bounds {
	return Bounds{
		Min: hmath.Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: hmath.Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Empty reports whether the bounds contain no points.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the width and height of the bounds.
func (b Bounds) Size() hmath.Vec2 {
	if b.Empty() {
		return hmath.Vec2{}
	}
	return b.Max.Sub(b.Min)
}

// Extend grows b to contain p.
func (b *Bounds) Extend(p hmath.Vec2) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// Buffer collects generated mesh data in memory. Its Vertex and Index
// methods satisfy VertexSink and IndexSink. Indices are stored as uint32, so
// a buffer holds meshes of at most math.MaxUint32+1 vertices.
type Buffer struct {
	Vertices []hmath.Vec2
	Indices  []uint32
	Bounds   Bounds
}

// NewBuffer returns a buffer with room for hexes hexagons at subdivision s.
// Negative sizes reserve nothing.
func NewBuffer(hexes, s int) *Buffer {
	nv, ni := Sizes(max(hexes, 0), max(s, 0))
	return &Buffer{
		Vertices: make([]hmath.Vec2, 0, nv),
		Indices:  make([]uint32, 0, ni),
		Bounds:   EmptyBounds(),
	}
}

// Vertex stores position at index.
func (b *Buffer) Vertex(index int, position hmath.Vec2) {
	if index >= len(b.Vertices) {
		b.Vertices = grow(b.Vertices, index+1)
	}
	b.Vertices[index] = position
	b.Bounds.Extend(position)
}

// Index stores vertex at slot. It panics if vertex does not fit in a uint32.
func (b *Buffer) Index(slot, vertex int) {
	if uint64(vertex) > math.MaxUint32 {
		panic(fmt.Sprintf("hexmesh: vertex index %d out of uint32 range", vertex))
	}
	if slot >= len(b.Indices) {
		b.Indices = grow(b.Indices, slot+1)
	}
	b.Indices[slot] = uint32(vertex)
}

// Triangles returns the index buffer as triangles.
func (b *Buffer) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, len(b.Indices)/3)
	for i := 0; i+2 < len(b.Indices); i += 3 {
		tris = append(tris, [3]uint32{b.Indices[i], b.Indices[i+1], b.Indices[i+2]})
	}
	return tris
}

// Reset empties the buffer, keeping its allocations.
func (b *Buffer) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Bounds = EmptyBounds()
}

// grow extends s to length n, zero filling new elements.
func grow[T any](s []T, n int) []T {
	if n <= cap(s) {
		ext := s[:n]
		clear(ext[len(s):])
		return ext
	}
	out := make([]T, n, max(n, 2*cap(s)))
	copy(out, s)
	return out
}
