// Package export writes generated hex meshes to files.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/hexgrid/internal/logger"
	"github.com/Faultbox/hexgrid/pkg/hexgrid"
	"github.com/Faultbox/hexgrid/pkg/hexmesh"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatOBJ  Format = "obj"
	FormatJSON Format = "json"
)

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatOBJ, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Stats summarizes an export.
type Stats struct {
	Hexes     int
	Vertices  int
	Triangles int
	Bytes     int64
	Bounds    hexmesh.Bounds
}

// Mesh triangulates hexes at subdivision s and writes the result to w.
// OBJ output is streamed straight from the generator; JSON is assembled in
// memory first.
func Mesh(w io.Writer, format Format, sys *hexgrid.System, hexes []hexgrid.Cubic, s int) (Stats, error) {
	cw := &countingWriter{w: w}

	var (
		stats Stats
		err   error
	)
	switch format {
	case FormatOBJ:
		stats, err = meshOBJ(cw, sys, hexes, s)
	case FormatJSON:
		stats, err = meshJSON(cw, sys, hexes, s)
	default:
		return Stats{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return Stats{}, err
	}
	stats.Bytes = cw.n

	logger.Debug("mesh exported",
		zap.String("format", string(format)),
		zap.Int("hexes", stats.Hexes),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int64("bytes", stats.Bytes))

	return stats, nil
}

func meshOBJ(w io.Writer, sys *hexgrid.System, hexes []hexgrid.Cubic, s int) (Stats, error) {
	ow := NewOBJWriter(w)
	ow.Comment(fmt.Sprintf("hexgrid mesh: %d hexes, %s, subdivision %d", len(hexes), sys.Config(), s))

	if err := hexmesh.Generate(sys, hexes, s, ow.Vertex, ow.Index); err != nil {
		return Stats{}, err
	}
	if err := ow.Close(); err != nil {
		return Stats{}, err
	}
	return Stats{
		Hexes:     len(hexes),
		Vertices:  ow.Vertices(),
		Triangles: ow.Faces(),
		Bounds:    ow.Bounds(),
	}, nil
}

func meshJSON(w io.Writer, sys *hexgrid.System, hexes []hexgrid.Cubic, s int) (Stats, error) {
	buf := hexmesh.NewBuffer(len(hexes), s)
	if err := hexmesh.Generate(sys, hexes, s, buf.Vertex, buf.Index); err != nil {
		return Stats{}, err
	}
	if err := WriteJSON(w, sys.Config(), s, hexes, buf); err != nil {
		return Stats{}, err
	}
	return Stats{
		Hexes:     len(hexes),
		Vertices:  len(buf.Vertices),
		Triangles: len(buf.Indices) / 3,
		Bounds:    buf.Bounds,
	}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
