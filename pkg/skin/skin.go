// Package skin loads the images a board is drawn with.
//
// A skin is either read from a manifest file that lists image files per
// shape tag, or generated from the built-in material icon set.
package skin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

// ErrNoVariants is returned by Check when a required tag has no image.
var ErrNoVariants = errors.New("skin: tag has no variants")

// Skin is a loaded image set plus optional background.
type Skin struct {
	Name            string
	Store           *render.VariantStore
	Background      *color.NRGBA
	BackgroundImage image.Image
}

// RenderConfig returns a render.Config carrying the skin background.
func (s *Skin) RenderConfig(nodeAspect float64) render.Config {
	cfg := render.DefaultConfig()
	cfg.NodeAspect = nodeAspect
	cfg.Background = s.Background
	cfg.BackgroundImage = s.BackgroundImage
	return cfg
}

// Load parses the manifest at path and decodes every image it names.
// Relative image paths resolve against the manifest's directory.
func Load(path string) (*Skin, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	m, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return FromManifest(m, filepath.Dir(path))
}

// FromManifest builds a skin from a parsed manifest. dir is the base for
// relative image paths.
func FromManifest(m *Manifest, dir string) (*Skin, error) {
	s := &Skin{
		Name:  m.SkinName(),
		Store: render.NewVariantStore(),
	}

	for _, d := range m.Decls {
		switch {
		case d.Background != nil:
			img, err := decodeFile(dir, *d.Background)
			if err != nil {
				return nil, fmt.Errorf("%s: background: %w", d.Pos, err)
			}
			s.BackgroundImage = img
		case d.Color != nil:
			c, err := render.ParseHexColor(*d.Color)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Pos, err)
			}
			s.Background = &c
		case d.Variant != nil:
			if err := s.addVariant(dir, d.Variant); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Skin) addVariant(dir string, v *VariantDecl) error {
	attr, err := board.ParseAttribute(v.Attribute)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Pos, err)
	}
	bend, err := board.ParseBend(v.Bend)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Pos, err)
	}
	key := board.Key(attr, bend)
	for _, name := range v.Files {
		img, err := decodeFile(dir, name)
		if err != nil {
			return fmt.Errorf("%s: variant %s: %w", v.Pos, key, err)
		}
		s.Store.RegisterImage(key, filepath.Base(name), img)
	}
	return nil
}

func decodeFile(dir, name string) (image.Image, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// Check reports every key in want that has no variants in store.
// The error wraps ErrNoVariants.
func Check(store *render.VariantStore, want []board.VariantKey) error {
	missing := store.Missing(want)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, k := range missing {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrNoVariants, strings.Join(names, ", "))
}
