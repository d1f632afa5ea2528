package cmd

import (
	"fmt"
	"io"
	"strings"

	"deedles.dev/xiter"
	"github.com/spf13/cobra"

	"github.com/Faultbox/hexgrid/pkg/hexgrid"
)

type neighborOptions struct {
	ring int
	area int
}

func newNeighborsCmd(a *app) *cobra.Command {
	opts := neighborOptions{ring: -1, area: -1}

	cmd := &cobra.Command{
		Use:   "neighbors <offset|axial|cubic> <a> <b> [c]",
		Short: "List the neighbors, a ring or an area around a hex",
		Long: `List the six neighbors of a hex in direction order, or every hex on the
ring at --ring steps, or every hex within --area steps. Coordinates are
printed in the same form they were given.`,
		Example: `  hexgrid neighbors offset 0 0
  hexgrid neighbors axial 2 -1 --ring 2
  hexgrid neighbors cubic 0 0 0 --area 3 -O flat-odd`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}

			kind := strings.ToLower(args[0])
			if kind == kindPixel {
				return fmt.Errorf("%w: neighbors takes offset, axial or cubic", errBadCoordinate)
			}
			c, err := parseCubic(sys, kind, args[1:])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch kind {
			case kindOffset:
				listNeighbors(w, sys, sys.CubicToOffset(c), opts)
			case kindAxial:
				listNeighbors(w, sys, c.Axial(), opts)
			default:
				listNeighbors(w, sys, c, opts)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.ring, "ring", -1, "List the ring at this distance")
	cmd.Flags().IntVar(&opts.area, "area", -1, "List every hex within this distance")
	cmd.MarkFlagsMutuallyExclusive("ring", "area")
	return cmd
}

// listNeighbors prints the hexes around center selected by opts.
func listNeighbors[C hexgrid.Coord](w io.Writer, sys *hexgrid.System, center C, opts neighborOptions) {
	switch {
	case opts.ring >= 0:
		for c := range hexgrid.Ring(sys, center, opts.ring) {
			fmt.Fprintf(w, "%v\tdistance %d\n", c, hexgrid.Distance(sys, center, c))
		}
	case opts.area >= 0:
		// Area excludes its radius ring; the flag is inclusive.
		for c := range hexgrid.Area(sys, center, opts.area+1) {
			fmt.Fprintf(w, "%v\tdistance %d\n", c, hexgrid.Distance(sys, center, c))
		}
	default:
		for i, n := range xiter.Enumerate(hexgrid.Neighbors(sys, center)) {
			edge, _ := hexgrid.PointBetweenNeighbours(sys, center, n)
			fmt.Fprintf(w, "%d\t%v\tedge %s\n", i, n, formatPoint(edge))
		}
	}
}
