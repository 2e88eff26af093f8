package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// OpKind identifies a recorded surface call.
type OpKind int

const (
	OpFill OpKind = iota
	OpImage
)

func (k OpKind) String() string {
	if k == OpFill {
		return "fill"
	}
	return "image"
}

// Op is one recorded surface call.
type Op struct {
	Kind  OpKind
	M     Affine
	Rect  image.Rectangle // OpFill
	Color color.NRGBA     // OpFill
	Image image.Image     // OpImage
}

// RecordingSurface keeps every call instead of drawing. It is used by
// tests and by the CLI's dry-run mode.
type RecordingSurface struct {
	Ops []Op
}

// FillRect implements Surface.
func (r *RecordingSurface) FillRect(m Affine, rect image.Rectangle, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, M: m, Rect: rect, Color: c})
}

// DrawImage implements Surface.
func (r *RecordingSurface) DrawImage(m Affine, img image.Image) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, M: m, Image: img})
}

// Images returns only the image draws.
func (r *RecordingSurface) Images() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpImage {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *RecordingSurface) Reset() {
	r.Ops = r.Ops[:0]
}

// Dump writes one line per call.
func (r *RecordingSurface) Dump(w io.Writer) error {
	for i, op := range r.Ops {
		var err error
		switch op.Kind {
		case OpFill:
			_, err = fmt.Fprintf(w, "%3d fill  rect=%v color=#%02x%02x%02x%02x at=(%.1f,%.1f)\n",
				i, op.Rect, op.Color.R, op.Color.G, op.Color.B, op.Color.A, op.M.C, op.M.F)
		case OpImage:
			size := op.Image.Bounds().Size()
			_, err = fmt.Fprintf(w, "%3d image %dx%d at=(%.1f,%.1f) rot=%.0f\n",
				i, size.X, size.Y, op.M.C, op.M.F, op.M.RotationDegrees())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
