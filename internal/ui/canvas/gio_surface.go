package canvas

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

// GioSurface records render calls as gio paint operations.
//
// Image ops are cached per source image. Entries not drawn during a frame
// are dropped on the next Reset. Images whose type cannot be a map key get
// a fresh op on every draw.
type GioSurface struct {
	ops    *op.Ops
	images map[image.Image]*cachedImage
}

type cachedImage struct {
	op   paint.ImageOp
	used bool
}

// NewGioSurface returns a surface with an empty image cache.
func NewGioSurface() *GioSurface {
	return &GioSurface{images: make(map[image.Image]*cachedImage)}
}

// Reset points the surface at ops for a new frame.
func (s *GioSurface) Reset(ops *op.Ops) {
	s.ops = ops
	for img, c := range s.images {
		if !c.used {
			delete(s.images, img)
			continue
		}
		c.used = false
	}
}

// Cached returns the number of image ops held.
func (s *GioSurface) Cached() int {
	return len(s.images)
}

func toAffine2D(m render.Affine) f32.Affine2D {
	return f32.NewAffine2D(
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	)
}

// FillRect implements render.Surface.
func (s *GioSurface) FillRect(m render.Affine, r image.Rectangle, c color.NRGBA) {
	if s.ops == nil {
		return
	}
	defer op.Affine(toAffine2D(m)).Push(s.ops).Pop()
	paint.FillShape(s.ops, c, clip.Rect(r).Op())
}

// DrawImage implements render.Surface.
func (s *GioSurface) DrawImage(m render.Affine, img image.Image) {
	if s.ops == nil || img == nil {
		return
	}
	iop := s.imageOp(img)

	defer op.Affine(toAffine2D(m)).Push(s.ops).Pop()
	defer clip.Rect{Max: img.Bounds().Size()}.Push(s.ops).Pop()
	iop.Add(s.ops)
	paint.PaintOp{}.Add(s.ops)
}

func (s *GioSurface) imageOp(img image.Image) paint.ImageOp {
	if !render.Cacheable(img) {
		return newImageOp(img)
	}
	c, ok := s.images[img]
	if !ok {
		c = &cachedImage{op: newImageOp(img)}
		s.images[img] = c
	}
	c.used = true
	return c.op
}

func newImageOp(img image.Image) paint.ImageOp {
	iop := paint.NewImageOp(img)
	// Images arrive at their final pixel size.
	iop.Filter = paint.FilterNearest
	return iop
}
