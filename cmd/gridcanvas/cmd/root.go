package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/gridcanvas/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gridcanvas",
	Short: "gridcanvas - grid board renderer and snake game",
	Long: `gridcanvas renders a grid board of oriented, skinned nodes into a
letterboxed viewport. It ships a snake game as the board model.

Examples:
  gridcanvas play                          # Open the game window
  gridcanvas snapshot -o board.png         # Render a headless PNG
  gridcanvas snapshot --dry-run --steps 5  # Print the draw list
  gridcanvas skin check meadow.skin        # Validate a skin manifest
  gridcanvas config show                   # Print the effective config`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridcanvas/config.yml)")
}

// setup loads .env, the config file and the logger, and stores them on
// the command context.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("config loaded", "path", path)

	ctx := withLogger(cmd.Context(), logger)
	ctx = withConfig(ctx, cfg)
	cmd.SetContext(ctx)
	return nil
}
