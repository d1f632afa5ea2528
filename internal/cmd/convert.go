package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
	hmath "github.com/Faultbox/hexgrid/pkg/math"
)

// Coordinate kinds accepted on the command line.
const (
	kindOffset = "offset"
	kindAxial  = "axial"
	kindCubic  = "cubic"
	kindPixel  = "pixel"
)

var errBadCoordinate = errors.New("bad coordinate")

// parseInts parses every argument as a decimal integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errBadCoordinate, arg)
		}
		out[i] = v
	}
	return out, nil
}

// parseCubic reads a coordinate of the given kind from args.
func parseCubic(sys *hexgrid.System, kind string, args []string) (hexgrid.Cubic, error) {
	kind = strings.ToLower(kind)
	if kind == kindPixel {
		if len(args) != 2 {
			return hexgrid.Cubic{}, fmt.Errorf("%w: pixel needs x and y", errBadCoordinate)
		}
		x, errX := strconv.ParseFloat(args[0], 64)
		y, errY := strconv.ParseFloat(args[1], 64)
		if errX != nil || errY != nil {
			return hexgrid.Cubic{}, fmt.Errorf("%w: pixel %s %s", errBadCoordinate, args[0], args[1])
		}
		return sys.PointToCubic(hmath.Vec2{X: x, Y: y}), nil
	}

	v, err := parseInts(args)
	if err != nil {
		return hexgrid.Cubic{}, err
	}

	switch kind {
	case kindOffset:
		if len(v) != 2 {
			return hexgrid.Cubic{}, fmt.Errorf("%w: offset needs x and y", errBadCoordinate)
		}
		return sys.OffsetToCubic(hexgrid.Offset{X: v[0], Y: v[1]}), nil
	case kindAxial:
		if len(v) != 2 {
			return hexgrid.Cubic{}, fmt.Errorf("%w: axial needs q and r", errBadCoordinate)
		}
		return hexgrid.Axial{Q: v[0], R: v[1]}.Cubic(), nil
	case kindCubic:
		if len(v) != 3 {
			return hexgrid.Cubic{}, fmt.Errorf("%w: cubic needs x, y and z", errBadCoordinate)
		}
		c := hexgrid.Cubic{X: v[0], Y: v[1], Z: v[2]}
		if !c.Valid() {
			return hexgrid.Cubic{}, fmt.Errorf("%w: %v does not sum to zero", errBadCoordinate, c)
		}
		return c, nil
	default:
		return hexgrid.Cubic{}, fmt.Errorf("%w: unknown kind %q", errBadCoordinate, kind)
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var corners bool

	cmd := &cobra.Command{
		Use:   "convert <offset|axial|cubic|pixel> <a> <b> [c]",
		Short: "Convert a coordinate to every other form",
		Long: `Convert a hex coordinate, or the hex containing a pixel position,
into offset, axial and cubic form and print its center.`,
		Example: `  hexgrid convert offset 3 2
  hexgrid convert cubic 1 -3 2 --corners
  hexgrid convert pixel 4.5 -2 -O flat-even`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			c, err := parseCubic(sys, args[0], args[1:])
			if err != nil {
				return err
			}
			printConversion(cmd.OutOrStdout(), sys, c, corners)
			return nil
		},
	}

	cmd.Flags().BoolVar(&corners, "corners", false, "Also print the six corner positions")
	return cmd
}

func printConversion(w io.Writer, sys *hexgrid.System, c hexgrid.Cubic, corners bool) {
	center := sys.CubicCenter(c)
	fmt.Fprintf(w, "%-8s%v\n", "offset", sys.CubicToOffset(c))
	fmt.Fprintf(w, "%-8s%v\n", "axial", c.Axial())
	fmt.Fprintf(w, "%-8s%v\n", "cubic", c)
	fmt.Fprintf(w, "%-8s%s\n", "center", formatPoint(center))

	if corners {
		for i, p := range hexgrid.Corners(sys, c) {
			fmt.Fprintf(w, "%-8s%s\n", fmt.Sprintf("corner%d", i), formatPoint(p))
		}
	}
}

func formatPoint(p hmath.Vec2) string {
	return fmt.Sprintf("(%.4f, %.4f)", unsigned(p.X), unsigned(p.Y))
}

// unsigned drops the sign of values that would print as -0.0000.
func unsigned(v float64) float64 {
	if math.Abs(v) < 5e-5 {
		return 0
	}
	return v
}
