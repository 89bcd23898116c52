// Command scratch replays or interactively plays a scratch-off reveal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/internal/config"
)

const (
	defaultDismissAt = 60.0
	defaultSurface   = "erase"
)

// options are the settings shared by all subcommands, after merging the
// config file under explicitly set flags.
type options struct {
	configPath string
	verbose    bool
	radius     float64
	tension    float64
	dismissAt  float64
	surface    string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "scratch",
		Short:         "Scratch-off reveal over an image",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.Float64Var(&opts.radius, "radius", scratch.DefaultRadius, "brush radius in image pixels")
	flags.Float64Var(&opts.tension, "tension", scratch.DefaultTension, "stroke smoothing tension")
	flags.Float64Var(&opts.dismissAt, "dismiss-at", defaultDismissAt, "cleared percentage that dismisses the top layer")
	flags.StringVar(&opts.surface, "surface", defaultSurface, "raster surface (erase, record)")

	rootCmd.AddCommand(newReplayCmd(opts))
	rootCmd.AddCommand(newTTYCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// resolve applies the config file to every flag the user did not set and
// installs the logger.
func (o *options) resolve(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "radius", &o.radius, fileCfg.Radius)
	applyFloatConfig(cmd, "tension", &o.tension, fileCfg.Tension)
	applyFloatConfig(cmd, "dismiss-at", &o.dismissAt, fileCfg.DismissAt)
	applyStringConfig(cmd, "surface", &o.surface, fileCfg.Surface)

	if o.radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", o.radius)
	}
	if o.tension < 0 {
		return fmt.Errorf("tension must not be negative, got %v", o.tension)
	}

	if o.verbose {
		scratch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}

func (o *options) newController(obs scratch.Observer) *scratch.Controller {
	return scratch.New(
		scratch.WithObserver(obs),
		scratch.WithTension(o.tension),
		scratch.WithDefaultRadius(o.radius),
	)
}

func applyFloatConfig(cmd *cobra.Command, name string, dst *float64, v *float64) {
	if v != nil && !cmd.Flags().Changed(name) {
		*dst = *v
	}
}

func applyStringConfig(cmd *cobra.Command, name string, dst *string, v *string) {
	if v != nil && !cmd.Flags().Changed(name) {
		*dst = *v
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write a default config file if none exists and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeDefaultConfig(cmd, opts.configPath)
		},
	}
}

func writeDefaultConfig(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
