package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

// ErrInvalidBoardSize is returned when a board dimension is not positive.
var ErrInvalidBoardSize = errors.New("render: invalid board size")

// Rect is a rectangle in viewport pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Letterbox returns the largest rectangle with the board's effective aspect
// ratio that fits in viewport, centered on both axes.
//
// The effective aspect is nodeAspect * W/H, where nodeAspect is the
// width/height ratio of a single cell. Values <= 0 mean square cells.
func Letterbox(viewport image.Point, size board.Size, nodeAspect float64) (Rect, error) {
	if !size.Valid() {
		return Rect{}, fmt.Errorf("%w: %s", ErrInvalidBoardSize, size)
	}
	if nodeAspect <= 0 || math.IsNaN(nodeAspect) || math.IsInf(nodeAspect, 0) {
		nodeAspect = 1.0
	}

	vw, vh := float64(viewport.X), float64(viewport.Y)
	if vw <= 0 || vh <= 0 {
		return Rect{}, nil
	}

	aspect := nodeAspect * float64(size.W) / float64(size.H)
	fitW := math.Min(vw, vh*aspect)
	fitH := math.Min(vh, vw/aspect)

	return Rect{
		X: (vw - fitW) / 2,
		Y: (vh - fitH) / 2,
		W: fitW,
		H: fitH,
	}, nil
}

// BuildBoardTransform maps board-grid coordinates to viewport pixels.
//
// It is the composition letterbox ∘ gridScale: a grid point is first
// scaled from cell units to viewport pixels (vw/W, vh/H), then the
// letterbox step shrinks the viewport onto the fitted rectangle and
// centers it. A zero-area viewport yields the zero transform, which
// callers detect with Degenerate and must not draw with.
func BuildBoardTransform(viewport image.Point, size board.Size, nodeAspect float64) (Affine, error) {
	fit, err := Letterbox(viewport, size, nodeAspect)
	if err != nil {
		return Affine{}, err
	}
	vw, vh := float64(viewport.X), float64(viewport.Y)
	if vw <= 0 || vh <= 0 {
		return Affine{}, nil
	}

	letterbox := Translation(fit.X, fit.Y).Scale(fit.W/vw, fit.H/vh)
	gridScale := Scaling(vw/float64(size.W), vh/float64(size.H))
	return letterbox.Mul(gridScale), nil
}

// CellSize returns the pixel size of one grid cell under m.
func CellSize(m Affine) (w, h float64) {
	return m.AxisScale()
}
