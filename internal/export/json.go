package export

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
	"github.com/Faultbox/hexgrid/pkg/hexmesh"
)

// Document is the JSON encoding of a generated mesh.
type Document struct {
	Grid        GridInfo     `json:"grid"`
	Subdivision int          `json:"subdivision"`
	Hexes       []HexInfo    `json:"hexes"`
	Vertices    [][2]float64 `json:"vertices"`
	Indices     []uint32     `json:"indices"`
	Bounds      *BoundsInfo  `json:"bounds,omitempty"`
}

// GridInfo describes the grid a mesh was generated on.
type GridInfo struct {
	Orientation     string  `json:"orientation"`
	InscribedRadius float64 `json:"inscribed_radius"`
	DescribedRadius float64 `json:"described_radius"`
}

// HexInfo locates one hexagon of the mesh. Its vertices start at
// FirstVertex and its indices at FirstIndex.
type HexInfo struct {
	X           int        `json:"x"`
	Y           int        `json:"y"`
	Z           int        `json:"z"`
	Center      [2]float64 `json:"center"`
	FirstVertex int        `json:"first_vertex"`
	FirstIndex  int        `json:"first_index"`
}

// BoundsInfo is an axis-aligned bounding box.
type BoundsInfo struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// NewDocument builds the JSON document for hexes triangulated into buf.
func NewDocument(cfg hexgrid.Config, s int, hexes []hexgrid.Cubic, buf *hexmesh.Buffer) (*Document, error) {
	sys, err := hexgrid.NewSystem(cfg)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Grid: GridInfo{
			Orientation:     cfg.Orientation().String(),
			InscribedRadius: cfg.InscribedRadius(),
			DescribedRadius: cfg.DescribedRadius(),
		},
		Subdivision: s,
		Hexes:       make([]HexInfo, len(hexes)),
		Vertices:    make([][2]float64, len(buf.Vertices)),
		Indices:     buf.Indices,
	}

	nv, ni := hexmesh.VertexCount(s), hexmesh.IndexCount(s)
	for k, h := range hexes {
		c := sys.CubicCenter(h)
		doc.Hexes[k] = HexInfo{
			X:           h.X,
			Y:           h.Y,
			Z:           h.Z,
			Center:      [2]float64{c.X, c.Y},
			FirstVertex: k * nv,
			FirstIndex:  k * ni,
		}
	}
	for i, v := range buf.Vertices {
		doc.Vertices[i] = [2]float64{v.X, v.Y}
	}
	if doc.Indices == nil {
		doc.Indices = []uint32{}
	}
	if !buf.Bounds.Empty() {
		doc.Bounds = &BoundsInfo{
			Min: [2]float64{buf.Bounds.Min.X, buf.Bounds.Min.Y},
			Max: [2]float64{buf.Bounds.Max.X, buf.Bounds.Max.Y},
		}
	}
	return doc, nil
}

// WriteJSON encodes the mesh in buf as an indented JSON document.
func WriteJSON(w io.Writer, cfg hexgrid.Config, s int, hexes []hexgrid.Cubic, buf *hexmesh.Buffer) error {
	doc, err := NewDocument(cfg, s, hexes, buf)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return bw.Flush()
}
