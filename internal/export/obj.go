package export

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/Faultbox/hexgrid/pkg/hexmesh"
	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// OBJWriter writes a Wavefront OBJ mesh. Its Vertex and Index methods
// satisfy hexmesh.VertexSink and hexmesh.IndexSink.
//
// Grid points (x, y) become vertices (x, 0, y) on the ground plane. Vertex
// lines are written as they arrive; faces may reference vertices that have
// not been generated yet, so they are held back until Close.
type OBJWriter struct {
	w      *bufio.Writer
	faces  bytes.Buffer
	tri    [3]int
	filled int

	vertices int
	nfaces   int
	bounds   hexmesh.Bounds
	scratch  []byte
	err      error
}

// NewOBJWriter returns a writer that buffers output to w.
func NewOBJWriter(w io.Writer) *OBJWriter {
	return &OBJWriter{
		w:      bufio.NewWriter(w),
		bounds: hexmesh.EmptyBounds(),
	}
}

// Comment writes a comment line.
func (o *OBJWriter) Comment(text string) {
	o.write("# ")
	o.write(text)
	o.write("\n")
}

// Vertex writes a vertex line. Indices must arrive in increasing order
// without gaps.
func (o *OBJWriter) Vertex(_ int, p hmath.Vec2) {
	b := append(o.scratch[:0], "v "...)
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, " 0 "...)
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	b = append(b, '\n')
	o.scratch = b

	o.writeBytes(b)
	o.vertices++
	o.bounds.Extend(p)
}

// Index collects index entries; every third one completes a face.
func (o *OBJWriter) Index(_, vertex int) {
	o.tri[o.filled] = vertex
	o.filled++
	if o.filled < 3 {
		return
	}
	o.filled = 0

	// OBJ indices start at 1.
	b := o.faces.AvailableBuffer()
	b = append(b, 'f')
	for _, v := range o.tri {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(v+1), 10)
	}
	b = append(b, '\n')
	o.faces.Write(b)
	o.nfaces++
}

// Vertices returns the number of vertices written.
func (o *OBJWriter) Vertices() int { return o.vertices }

// Faces returns the number of complete faces collected.
func (o *OBJWriter) Faces() int { return o.nfaces }

// Bounds returns the bounds of all vertices written.
func (o *OBJWriter) Bounds() hexmesh.Bounds { return o.bounds }

// Close writes the collected faces and flushes the output. It returns the
// first error met while writing.
func (o *OBJWriter) Close() error {
	if o.err != nil {
		return o.err
	}
	if _, err := o.faces.WriteTo(o.w); err != nil {
		return err
	}
	return o.w.Flush()
}

func (o *OBJWriter) write(s string) {
	if o.err == nil {
		_, o.err = o.w.WriteString(s)
	}
}

func (o *OBJWriter) writeBytes(b []byte) {
	if o.err == nil {
		_, o.err = o.w.Write(b)
	}
}
