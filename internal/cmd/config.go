package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Faultbox/hexgrid/internal/config"
	"github.com/Faultbox/hexgrid/internal/logger"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	config.RegisterMeshFlags(show.Flags())

	save := &cobra.Command{
		Use:   "save [path]",
		Short: "Write the effective configuration to a file",
		Long: `Write the effective configuration, including any flag overrides, to path.
Without a path the user config file is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.ConfigDir(), "config.yaml")
			write := a.cfg.Save
			if len(args) == 1 {
				path = args[0]
				write = func() error { return a.cfg.SaveTo(path) }
			}
			if err := write(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			logger.Sugar.Debugf("config written to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	config.RegisterMeshFlags(save.Flags())

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the user config directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigDir())
		},
	}

	cmd.AddCommand(show, save, path)
	return cmd
}
