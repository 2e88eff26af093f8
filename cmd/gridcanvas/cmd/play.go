package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/gridcanvas/internal/config"
	"github.com/OpenTraceLab/gridcanvas/pkg/skin"
)

// PlayOptions is what the play command hands to the window host.
type PlayOptions struct {
	Config *config.Config
	Skin   *skin.Skin
	Seed   uint64
	Logger *log.Logger

	SkinPath  string
	WatchSkin bool
}

// Player opens the game window and blocks until it closes.
type Player func(ctx context.Context, opts PlayOptions) error

var player Player

// SetPlayer installs the window host. main does this so that the command
// package builds without a windowing backend.
func SetPlayer(p Player) {
	player = p
}

var (
	playSeed  uint64
	playSkin  string
	playWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open a window and play snake. Arrow keys steer, space pauses,
R restarts.

If keyboard input doesn't work on Wayland, run with GIO_BACKEND=x11.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "game seed (default: time based)")
	playCmd.Flags().StringVar(&playSkin, "skin", "", "skin manifest (default: config, then builtin)")
	playCmd.Flags().BoolVar(&playWatch, "watch", false, "reload the skin manifest when it changes")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if player == nil {
		return errors.New("no window backend available")
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	s, err := loadSkin(cfg, playSkin)
	if err != nil {
		return err
	}
	seed := playSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	path := playSkin
	if path == "" {
		path = cfg.Skin
	}
	if playWatch && path == "" {
		logger.Warn("--watch needs a skin manifest, ignoring")
	}
	logger.Info("starting game", "board", cfg.BoardSize(), "skin", s.Name, "seed", seed)
	return player(ctx, PlayOptions{
		Config:    cfg,
		Skin:      s,
		Seed:      seed,
		Logger:    logger,
		SkinPath:  path,
		WatchSkin: playWatch,
	})
}
