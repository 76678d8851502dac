// Package main is the entry point for the objview mesh viewer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/internal/viewer"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var overrides config.Overrides

	cmd := &cobra.Command{
		Use:   "objview [model.obj]",
		Short: "Interactive viewer for triangulated OBJ meshes",
		Long: `objview - interactive viewer for triangulated OBJ meshes

Controls:
  Mouse drag  - Rotate model
  x/X y/Y z/Z - Rotate about an axis (+/- 5 degrees)
  + / -       - Scale up / down
  w/s a/d     - Move up/down, left/right
  1 2 3       - Toggle lights
  r           - Reset view
  p           - Save screenshot
  Esc         - Quit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(&overrides, args)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runViewer(cfg)
		},
	}
	overrides.Bind(cmd.PersistentFlags())

	infoCmd := &cobra.Command{
		Use:   "info [model.obj]",
		Short: "Display mesh information",
		Long:  "Parse a mesh and print record counts, attribute coverage and bounding box without opening a window.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(&overrides, args)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runInfo(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.AddCommand(infoCmd)
	cmd.AddCommand(newConfigCommand(&overrides))

	return cmd
}

func newConfigCommand(overrides *config.Overrides) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a file",
		Long: `Write the configuration in effect (defaults, config file and flags) as YAML.
Without a path the file goes to the user config directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}
			return runConfigInit(cmd.OutOrStdout(), cfg, args, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configCmd.AddCommand(initCmd)
	return configCmd
}

func runConfigInit(w io.Writer, cfg *config.Config, args []string, force bool) error {
	path := config.DefaultPath()
	if len(args) == 1 {
		path = args[0]
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	var err error
	if len(args) == 1 {
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

// setup loads configuration, applies the positional mesh path and starts logging.
func setup(overrides *config.Overrides, args []string) (*config.Config, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		cfg.Mesh.Path = args[0]
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func runViewer(cfg *config.Config) error {
	logger.Info("=== objview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return err
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return err
	}

	logger.Info("viewer closed normally")
	return nil
}
