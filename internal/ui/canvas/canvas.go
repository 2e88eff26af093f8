// Package canvas hosts a board inside a gio layout.
//
// A Canvas owns the render settings and the board subscription. The host
// calls Layout (or Redraw with its own surface) whenever it repaints, and
// the canvas forwards arrow keys to the board as orientation intents.
package canvas

import (
	"image"
	"image/color"

	"gioui.org/io/key"
	"gioui.org/layout"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

var arrowKeys = map[key.Name]board.Direction{
	key.NameUpArrow:    board.Up,
	key.NameRightArrow: board.Right,
	key.NameDownArrow:  board.Down,
	key.NameLeftArrow:  board.Left,
}

// Canvas draws one board. It is not safe for concurrent use; all calls
// belong on the window's event goroutine.
type Canvas struct {
	logger     *log.Logger
	renderer   *render.Renderer
	cfg        render.Config
	board      board.Board
	cancel     func()
	invalidate func()
	surface    *GioSurface
	last       render.Stats
}

// New returns an empty canvas. invalidate is called whenever the canvas
// needs a repaint (board resized, settings changed); it may be nil.
func New(logger *log.Logger, invalidate func()) *Canvas {
	if logger == nil {
		logger = log.Default()
	}
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Canvas{
		logger:     logger,
		renderer:   render.NewRenderer(nil, logger),
		cfg:        render.DefaultConfig(),
		invalidate: invalidate,
		surface:    NewGioSurface(),
	}
}

// SetBoard replaces the board. The subscription to the previous board's
// size changes is cancelled before the new one is registered.
func (c *Canvas) SetBoard(b board.Board) {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.board = b
	if b != nil {
		c.cancel = b.OnSizeChanged(func(s board.Size) {
			c.logger.Debug("board resized", "size", s)
			c.invalidate()
		})
	}
	c.invalidate()
}

// Board returns the current board, or nil.
func (c *Canvas) Board() board.Board {
	return c.board
}

// SetVariantStore replaces the images nodes are drawn with.
func (c *Canvas) SetVariantStore(store *render.VariantStore) {
	c.renderer.SetStore(store)
	c.invalidate()
}

// SetNodeAspectOverride sets the width/height ratio of a cell.
// Non-positive ratios restore square cells.
func (c *Canvas) SetNodeAspectOverride(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	c.cfg.NodeAspect = ratio
	c.invalidate()
}

// SetBackground sets the board fill. An image takes precedence over a
// colour; passing nil for both leaves the board unfilled.
func (c *Canvas) SetBackground(col *color.NRGBA, img image.Image) {
	if col != nil {
		v := *col
		col = &v
	}
	c.cfg.Background = col
	c.cfg.BackgroundImage = img
	c.invalidate()
}

// Config returns a copy of the current render settings.
func (c *Canvas) Config() render.Config {
	return c.cfg
}

// Redraw draws the board into s for a viewport of the given size.
// Problems with the board are logged, never returned.
func (c *Canvas) Redraw(s render.Surface, viewport image.Point) render.Stats {
	if c.board == nil {
		return render.Stats{Skipped: true}
	}
	stats, err := c.renderer.Frame(s, viewport, c.board, c.cfg)
	if err != nil {
		c.logger.Warn("skipping redraw", "size", c.board.Size(), "err", err)
		return render.Stats{Skipped: true}
	}
	c.last = stats
	return stats
}

// LastStats returns the result of the most recent successful redraw.
func (c *Canvas) LastStats() render.Stats {
	return c.last
}

// HandleKey forwards arrow keys to the board. It reports whether the key
// was consumed; every other key is left to the caller.
func (c *Canvas) HandleKey(name key.Name) bool {
	dir, ok := arrowKeys[name]
	if !ok || c.board == nil {
		return false
	}
	c.board.Orient(dir)
	return true
}

// Layout handles pending arrow key presses and draws the board over the
// full constraint size.
func (c *Canvas) Layout(gtx layout.Context) layout.Dimensions {
	for name := range arrowKeys {
		for {
			ev, ok := gtx.Event(key.Filter{Name: name})
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				c.HandleKey(e.Name)
			}
		}
	}

	size := gtx.Constraints.Max
	c.surface.Reset(gtx.Ops)
	c.Redraw(c.surface, size)
	return layout.Dimensions{Size: size}
}

// Close drops the board subscription.
func (c *Canvas) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
