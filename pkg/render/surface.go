package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Surface is a drawing target. Both calls take the full transform from
// local coordinates to surface pixels.
type Surface interface {
	// FillRect fills r (local units) with a flat color.
	FillRect(m Affine, r image.Rectangle, c color.NRGBA)
	// DrawImage draws img with its pixel grid as the local space.
	DrawImage(m Affine, img image.Image)
}

// RasterSurface draws into an in-memory RGBA image. It backs headless
// snapshots and tests.
type RasterSurface struct {
	dst *image.RGBA
}

// NewRasterSurface allocates a transparent w x h surface.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{dst: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.dst
}

// Size returns the surface size in pixels.
func (s *RasterSurface) Size() image.Point {
	return s.dst.Bounds().Size()
}

// Clear paints every pixel with c.
func (s *RasterSurface) Clear(c color.NRGBA) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect implements Surface.
func (s *RasterSurface) FillRect(m Affine, r image.Rectangle, c color.NRGBA) {
	if r.Empty() || m.Degenerate() {
		return
	}
	src := image.NewUniform(c)
	if m.B == 0 && m.D == 0 && m.A > 0 && m.E > 0 {
		lo := m.Apply(Point{X: float64(r.Min.X), Y: float64(r.Min.Y)})
		hi := m.Apply(Point{X: float64(r.Max.X), Y: float64(r.Max.Y)})
		px := image.Rect(roundInt(lo.X), roundInt(lo.Y), roundInt(hi.X), roundInt(hi.Y))
		draw.Draw(s.dst, px, src, image.Point{}, draw.Over)
		return
	}
	draw.NearestNeighbor.Transform(s.dst, m.Aff3(), src, r, draw.Over, nil)
}

// DrawImage implements Surface.
func (s *RasterSurface) DrawImage(m Affine, img image.Image) {
	if img == nil || m.Degenerate() {
		return
	}
	b := img.Bounds()
	if m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1 {
		at := image.Pt(roundInt(m.C), roundInt(m.F))
		draw.Draw(s.dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
		return
	}
	// The image grid starts at b.Min; shift it to the local origin.
	m = m.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	draw.NearestNeighbor.Transform(s.dst, m.Aff3(), img, b, draw.Over, nil)
}

// EncodePNG writes the surface as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.dst)
}

func roundInt(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
