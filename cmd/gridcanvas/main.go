package main

import (
	"context"

	"github.com/OpenTraceLab/gridcanvas/cmd/gridcanvas/cmd"
	"github.com/OpenTraceLab/gridcanvas/internal/ui"
)

func main() {
	cmd.SetPlayer(func(ctx context.Context, opts cmd.PlayOptions) error {
		return ui.Run(ctx, ui.Options{
			Config: opts.Config,
			Skin:   opts.Skin,
			Seed:   opts.Seed,
			Logger: opts.Logger,

			SkinPath:  opts.SkinPath,
			WatchSkin: opts.WatchSkin,
		})
	})
	cmd.Execute()
}
