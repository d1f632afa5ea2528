package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/hexgrid/internal/config"
	"github.com/Faultbox/hexgrid/internal/export"
	"github.com/Faultbox/hexgrid/internal/logger"
	"github.com/Faultbox/hexgrid/internal/tileset"
)

func newMeshCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Triangulate a tile set and export the mesh",
		Long: `Build a tile set (hexagon, rectangle or noise island), triangulate every
hex at the configured subdivision level and write the mesh as Wavefront OBJ
or JSON. Statistics are printed to stderr.`,
		Example: `  hexgrid mesh -n 4 -s 2 -o board.obj
  hexgrid mesh --shape island -n 12 --seed 7 -f json -o island.json
  hexgrid mesh --shape rectangle -O flat-odd > grid.obj`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			start := time.Now()
			hexes, err := tileset.Build(sys, a.cfg.Tiles)
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(cmd.OutOrStdout(), a.cfg.Output.Path)
			if err != nil {
				return err
			}

			stats, err := export.Mesh(out, format, sys, hexes, a.cfg.Mesh.Subdivision)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("writing mesh: %w", err)
			}

			logger.Info("mesh generated",
				zap.String("shape", a.cfg.Tiles.Shape),
				zap.Int("hexes", stats.Hexes),
				zap.Int("subdivision", a.cfg.Mesh.Subdivision),
				zap.Duration("elapsed", time.Since(start)))

			if !quiet {
				printMeshStats(cmd.ErrOrStderr(), a.cfg, stats)
			}
			return nil
		},
	}

	config.RegisterMeshFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print statistics")
	return cmd
}

// openOutput returns the destination for path. An empty path or "-" means
// stdout, which is never closed.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}

func printMeshStats(w io.Writer, cfg *config.Config, stats export.Stats) {
	dest := cfg.Output.Path
	if dest == "" || dest == "-" {
		dest = "stdout"
	}
	size := stats.Bounds.Size()

	fmt.Fprintf(w, "Tile set:    %s, %s hexes\n", cfg.Tiles.Shape, humanize.Comma(int64(stats.Hexes)))
	fmt.Fprintf(w, "Subdivision: %d\n", cfg.Mesh.Subdivision)
	fmt.Fprintf(w, "Vertices:    %s\n", humanize.Comma(int64(stats.Vertices)))
	fmt.Fprintf(w, "Triangles:   %s\n", humanize.Comma(int64(stats.Triangles)))
	if !stats.Bounds.Empty() {
		fmt.Fprintf(w, "Extent:      %s x %s\n",
			humanize.FtoaWithDigits(size.X, 3), humanize.FtoaWithDigits(size.Y, 3))
	}
	fmt.Fprintf(w, "Output:      %s (%s, %s)\n", dest, cfg.Output.Format, humanize.Bytes(uint64(stats.Bytes)))
}
