// Package render turns a board into draw calls on a Surface.
//
// A frame is built in three steps:
//
//	m := BuildBoardTransform(viewport, size, aspect) // grid -> pixels
//	DrawBackground(surface, m, ...)                  // board rectangle
//	NodeRenderer.Draw(surface, m, node)              // once per node
//
// Images are never drawn under a transform that both scales and rotates.
// They are resampled to their on-screen size first (Prescaler) and then
// placed with translation and rotation only.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// Config holds the per-canvas render settings.
type Config struct {
	// NodeAspect is the width/height ratio of one cell. Zero means 1.0.
	NodeAspect float64
	// Background, when set and BackgroundImage is nil, fills the board.
	Background *color.NRGBA
	// BackgroundImage is stretched over the whole board.
	BackgroundImage image.Image
}

// DefaultConfig returns square cells and no background.
func DefaultConfig() Config {
	return Config{NodeAspect: 1.0}
}

// Stats summarizes one frame.
type Stats struct {
	Nodes   int
	Drawn   int
	Missing int
	Skipped bool
}

// Renderer draws whole frames. It keeps the prescale cache between
// frames and is not safe for concurrent use.
type Renderer struct {
	nodes  NodeRenderer
	logger *log.Logger
}

// NewRenderer returns a renderer drawing variants from store.
func NewRenderer(store *VariantStore, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		nodes: NodeRenderer{
			Store:     store,
			Prescaler: NewPrescaler(),
			Logger:    logger,
		},
		logger: logger,
	}
}

// SetStore swaps the variant store used for nodes.
func (r *Renderer) SetStore(store *VariantStore) {
	r.nodes.Store = store
	r.nodes.Prescaler.Reset()
}

// Store returns the current variant store.
func (r *Renderer) Store() *VariantStore {
	return r.nodes.Store
}

// Frame draws b into s. An invalid board size draws nothing and returns
// an error wrapping ErrInvalidBoardSize; an empty viewport draws nothing
// and returns Stats.Skipped.
func (r *Renderer) Frame(s Surface, viewport image.Point, b board.Board, cfg Config) (Stats, error) {
	if b == nil {
		return Stats{Skipped: true}, nil
	}
	size := b.Size()
	m, err := BuildBoardTransform(viewport, size, cfg.NodeAspect)
	if err != nil {
		return Stats{}, fmt.Errorf("building board transform: %w", err)
	}
	if m.Degenerate() {
		return Stats{Skipped: true}, nil
	}

	DrawBackground(s, m, size, cfg.BackgroundImage, cfg.Background, r.nodes.Prescaler)

	r.nodes.Angle = b.OrientationAngle
	nodes := b.Nodes()
	stats := Stats{Nodes: len(nodes)}
	for _, n := range nodes {
		if r.nodes.Draw(s, m, n) {
			stats.Drawn++
		} else {
			stats.Missing++
		}
	}
	r.nodes.Prescaler.Sweep()
	if stats.Missing > 0 {
		r.logger.Debug("frame drew with missing variants", "missing", stats.Missing, "nodes", stats.Nodes)
	}
	return stats, nil
}
