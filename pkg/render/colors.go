package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme is a named background palette for the board.
type Theme int

const (
	ThemeClassic Theme = iota
	ThemeNord
	ThemeMono
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[Theme]string{
	ThemeClassic: "classic",
	ThemeNord:    "nord",
	ThemeMono:    "mono",
}

var themeBackgrounds = map[Theme]color.NRGBA{
	ThemeClassic: {R: 20, G: 90, B: 50, A: 255}, // dark green
	ThemeNord:    {R: 46, G: 52, B: 64, A: 255}, // Nord0
	ThemeMono:    {R: 24, G: 24, B: 24, A: 255},
}

// Special colors
var (
	ColorWindow = color.NRGBA{R: 0, G: 16, B: 35, A: 255} // letterbox margins
	ColorHead   = color.NRGBA{R: 235, G: 203, B: 139, A: 255}
	ColorBody   = color.NRGBA{R: 163, G: 190, B: 140, A: 255}
	ColorTail   = color.NRGBA{R: 143, G: 188, B: 187, A: 255}
	ColorFood   = color.NRGBA{R: 191, G: 97, B: 106, A: 255}
)

// Background returns the board color for t.
func (t Theme) Background() color.NRGBA {
	if c, ok := themeBackgrounds[t]; ok {
		return c
	}
	return themeBackgrounds[ThemeClassic]
}

// ParseTheme looks a theme up by name.
func ParseTheme(name string) (Theme, error) {
	for t, n := range ThemeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return ThemeClassic, fmt.Errorf("unknown theme %q", name)
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
