package ui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/internal/config"
	"github.com/OpenTraceLab/gridcanvas/internal/ui/canvas"
	"github.com/OpenTraceLab/gridcanvas/internal/ui/session"
	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
	"github.com/OpenTraceLab/gridcanvas/pkg/skin"
	"github.com/OpenTraceLab/gridcanvas/pkg/snake"
)

// Options wires an App.
type Options struct {
	Config *config.Config
	Skin   *skin.Skin
	Seed   uint64
	Logger *log.Logger

	// WatchSkin reloads the skin when SkinPath changes on disk.
	SkinPath  string
	WatchSkin bool
}

// App drives the Gio window for one play session.
type App struct {
	Window *app.Window
	Theme  *material.Theme

	logger  *log.Logger
	tick    time.Duration
	canvas  *canvas.Canvas
	session *session.Session

	fallbackBg color.NRGBA
	skinPath   string
	watchSkin  bool
	reloads    chan *skin.Skin

	ops op.Ops
}

// New wires the window, canvas, skin and session together.
func New(w *app.Window, opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Skin == nil {
		sk, err := skin.Builtin(opts.Config.CellPixels)
		if err != nil {
			return nil, fmt.Errorf("loading builtin skin: %w", err)
		}
		opts.Skin = sk
	}
	if err := skin.Check(opts.Skin.Store, board.LiveKeys()); err != nil {
		opts.Logger.Warn("skin is incomplete, some nodes will not be drawn", "skin", opts.Skin.Name, "err", err)
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Fg = render.ColorHead

	bg, err := opts.Config.BackgroundColor()
	if err != nil {
		return nil, err
	}

	a := &App{
		Window:     w,
		Theme:      th,
		logger:     opts.Logger,
		tick:       opts.Config.Tick,
		fallbackBg: bg,
		skinPath:   opts.SkinPath,
		watchSkin:  opts.WatchSkin && opts.SkinPath != "",
		reloads:    make(chan *skin.Skin, 1),
	}
	a.canvas = canvas.New(opts.Logger, w.Invalidate)
	a.canvas.SetNodeAspectOverride(opts.Config.NodeAspect)
	a.applySkin(opts.Skin)

	s, err := session.New(session.Options{
		Size:   opts.Config.BoardSize(),
		Tick:   opts.Config.Tick,
		Seed:   opts.Seed,
		Logger: opts.Logger,
		OnNewGame: func(g *snake.Game) {
			a.canvas.SetBoard(g)
		},
	})
	if err != nil {
		return nil, err
	}
	a.session = s
	return a, nil
}

// applySkin installs s, falling back to the configured colour when the
// skin has no background of its own.
func (a *App) applySkin(s *skin.Skin) {
	a.canvas.SetVariantStore(s.Store)
	bg := a.fallbackBg
	if s.Background != nil {
		bg = *s.Background
	}
	a.canvas.SetBackground(&bg, s.BackgroundImage)
}

// Run processes window events until the window is closed or ctx ends.
// A ticker goroutine only invalidates the window; the game advances
// inside the frame handler.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(a.tick)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				a.Window.Perform(system.ActionClose)
				return
			case <-ticker.C:
				a.Window.Invalidate()
			}
		}
	}()

	if a.watchSkin {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := skin.Watch(watchCtx, a.skinPath, skin.DefaultReloadDelay, func(s *skin.Skin, err error) {
				if err != nil {
					a.logger.Warn("skin reload failed", "path", a.skinPath, "err", err)
					return
				}
				select {
				case a.reloads <- s:
				default:
				}
				a.Window.Invalidate()
			})
			if err != nil {
				a.logger.Error("skin watcher stopped", "err", err)
			}
		}()
	}

	defer a.canvas.Close()
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleSessionKeys(gtx layout.Context) {
	for _, name := range []key.Name{key.NameSpace, "R"} {
		for {
			ev, ok := gtx.Event(key.Filter{Name: name})
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				if _, err := a.session.HandleKey(e.Name); err != nil {
					a.logger.Error("session key", "key", e.Name, "err", err)
				}
			}
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	select {
	case s := <-a.reloads:
		a.logger.Info("skin reloaded", "skin", s.Name, "images", s.Store.Len())
		a.applySkin(s)
	default:
	}
	a.handleSessionKeys(gtx)
	a.session.Advance(gtx.Now)

	paint.FillShape(gtx.Ops, render.ColorWindow, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(a.canvas.Layout),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx,
				material.Body1(a.Theme, a.session.Status()).Layout)
		}),
	)
}
