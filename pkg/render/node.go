package render

import (
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// NodeRenderer draws single board nodes.
type NodeRenderer struct {
	Store     *VariantStore
	Angle     func(board.Facing) float64
	Prescaler *Prescaler
	Logger    *log.Logger
}

// Select picks the variant for n: Lookup(key)[Seed % len]. ok is false
// when the key has no variants.
func (r *NodeRenderer) Select(n board.Node) (v *Variant, index int, ok bool) {
	variants := r.Store.Lookup(n.Key)
	if len(variants) == 0 {
		return nil, 0, false
	}
	index = int(n.Seed % uint32(len(variants)))
	return variants[index], index, true
}

// Local returns the transform that maps n's unit square to the surface:
// move to the cell center, rotate by the facing angle, move back by half
// a cell.
func (r *NodeRenderer) Local(base Affine, n board.Node) Affine {
	angle := r.Angle
	if angle == nil {
		angle = board.Angle
	}
	return base.
		Translate(float64(n.Pos.X)+0.5, float64(n.Pos.Y)+0.5).
		Rotate(angle(n.Facing)).
		Translate(-0.5, -0.5)
}

// Draw renders n and reports whether anything was drawn. A node whose key
// has no variants is skipped without error.
func (r *NodeRenderer) Draw(s Surface, base Affine, n board.Node) bool {
	if base.Degenerate() {
		return false
	}
	v, _, ok := r.Select(n)
	if !ok {
		if r.Logger != nil {
			r.Logger.Debug("no variant for node", "key", n.Key, "pos", n.Pos)
		}
		return false
	}

	local := r.Local(base, n)

	// Resample along the node's own axes, then place rigidly.
	sx, sy := local.AxisScale()
	if r.Prescaler == nil {
		r.Prescaler = NewPrescaler()
	}
	img := r.Prescaler.Scale(v.Image(), TargetSize(sx, sy))
	if img == nil {
		return false
	}
	s.DrawImage(local.Placement(), img)
	return true
}
