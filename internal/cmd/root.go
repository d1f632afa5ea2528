// Package cmd implements the hexgrid command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/hexgrid/internal/config"
	"github.com/Faultbox/hexgrid/internal/logger"
	"github.com/Faultbox/hexgrid/pkg/hexgrid"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg *config.Config
	sys *hexgrid.System
}

// system returns the coordinate system described by the loaded config.
func (a *app) system() (*hexgrid.System, error) {
	if a.sys != nil {
		return a.sys, nil
	}
	sys, err := a.cfg.Grid.System()
	if err != nil {
		return nil, err
	}
	a.sys = sys
	logger.Debug("coordinate system ready", logger.Grid(sys.Config()))
	return sys, nil
}

// NewRootCmd builds the hexgrid command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hexgrid",
		Short: "Hexagonal grid coordinates, neighbors and meshes",
		Long: `hexgrid converts between offset, axial and cubic hex coordinates,
walks neighbors, rings and areas, and triangulates tile sets into meshes.

Settings are read from ./hexgrid.yaml or the user config directory and can
be overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.cfg = cfg
			a.sys = nil

			logger.Debug("config loaded",
				zap.String("command", cmd.Name()),
				zap.String("orientation", cfg.Grid.Orientation),
				zap.Float64("inscribed", cfg.Grid.InscribedRadius))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newConvertCmd(a),
		newNeighborsCmd(a),
		newMeshCmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute runs the hexgrid command line.
func Execute() error {
	return run(NewRootCmd(), os.Args[1:])
}
