package ui

import (
	"context"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run opens the game window and blocks until it closes. app.Main never
// returns, so the process exits from the window goroutine.
func Run(ctx context.Context, opts Options) error {
	w := new(app.Window)
	a, err := New(w, opts)
	if err != nil {
		return err
	}

	go func() {
		w.Option(app.Title("gridcanvas"), app.Size(unit.Dp(640), unit.Dp(640)))
		code := 0
		if err := a.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("ui", "err", err)
			code = 1
		}
		os.Exit(code)
	}()

	app.Main()
	return nil
}
