package skin

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

// DefaultCellPixels is the tile size used when Builtin gets a size <= 0.
const DefaultCellPixels = 32

type builtinTile struct {
	key  board.VariantKey
	name string
	icon []byte
	fg   color.NRGBA
	bg   color.NRGBA
}

var (
	tileDark  = color.NRGBA{R: 30, G: 40, B: 30, A: 255}
	tileLight = color.NRGBA{R: 44, G: 58, B: 44, A: 255}
	tileClear = color.NRGBA{}
)

// Tiles are drawn facing up; the renderer rotates them per node.
// Registration order fixes which variant a seed selects.
var builtinTiles = []builtinTile{
	{board.Key(board.Head, board.Straight), "head-arrow", icons.NavigationArrowUpward, render.ColorHead, tileDark},
	{board.Key(board.Head, board.Straight), "head-chevron", icons.HardwareKeyboardArrowUp, render.ColorHead, tileLight},

	{board.Key(board.Body, board.Straight), "body-dots-dark", icons.NavigationMoreVert, render.ColorBody, tileDark},
	{board.Key(board.Body, board.Straight), "body-dots-light", icons.NavigationMoreVert, render.ColorBody, tileLight},
	{board.Key(board.Body, board.BendLeft), "body-left-dark", icons.NavigationChevronLeft, render.ColorBody, tileDark},
	{board.Key(board.Body, board.BendLeft), "body-left-light", icons.NavigationChevronLeft, render.ColorBody, tileLight},
	{board.Key(board.Body, board.BendRight), "body-right-dark", icons.NavigationChevronRight, render.ColorBody, tileDark},
	{board.Key(board.Body, board.BendRight), "body-right-light", icons.NavigationChevronRight, render.ColorBody, tileLight},

	{board.Key(board.Tail, board.Straight), "tail", icons.NavigationExpandLess, render.ColorTail, tileDark},

	{board.Key(board.Food, board.NoBend), "food-pizza", icons.MapsLocalPizza, render.ColorFood, tileClear},
	{board.Key(board.Food, board.NoBend), "food-heart", icons.ActionFavorite, render.ColorFood, tileClear},
	{board.Key(board.Food, board.NoBend), "food-star", icons.ActionGrade, render.ColorFood, tileClear},
}

// Builtin rasterizes the material icon skin at cellPx pixels per tile.
func Builtin(cellPx int) (*Skin, error) {
	if cellPx <= 0 {
		cellPx = DefaultCellPixels
	}
	s := &Skin{
		Name:  "builtin",
		Store: render.NewVariantStore(),
	}
	for _, t := range builtinTiles {
		img, err := RasterizeIcon(t.icon, cellPx, t.fg, t.bg)
		if err != nil {
			return nil, fmt.Errorf("builtin tile %s: %w", t.name, err)
		}
		s.Store.RegisterImage(t.key, t.name, img)
	}
	return s, nil
}

// RasterizeIcon draws an IconVG icon tinted fg onto a size x size tile
// filled with bg.
func RasterizeIcon(data []byte, size int, fg, bg color.NRGBA) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if bg.A != 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	pal := iconvg.DefaultPalette
	pal[0] = color.RGBAModel.Convert(fg).(color.RGBA)

	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Over)
	if err := iconvg.Decode(&z, data, &iconvg.DecodeOptions{Palette: &pal}); err != nil {
		return nil, err
	}
	return dst, nil
}
