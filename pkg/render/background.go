package render

import (
	"image"
	"image/color"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// DrawBackground paints the board rectangle (0,0)-(W,H) in grid units.
//
// An image takes precedence over a color. The image is resampled to the
// board's pixel size first and then drawn with translation only. With
// neither set nothing is drawn.
func DrawBackground(s Surface, m Affine, size board.Size, img image.Image, c *color.NRGBA, p *Prescaler) {
	if m.Degenerate() || !size.Valid() {
		return
	}

	switch {
	case img != nil:
		cw, ch := CellSize(m)
		target := TargetSize(cw*float64(size.W), ch*float64(size.H))
		if p == nil {
			p = NewPrescaler()
		}
		scaled := p.Scale(img, target)
		if scaled == nil {
			return
		}
		s.DrawImage(m.Placement(), scaled)

	case c != nil:
		s.FillRect(m, image.Rect(0, 0, size.W, size.H), *c)
	}
}
