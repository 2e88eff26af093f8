package skin

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

const testManifest = `# test skin
skin "meadow";
color "#102030";
variant head straight "head.png";
variant body straight "b1.png" "b2.png";
// food
variant food none "apple.png";
`

func TestParseManifest(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	m, err := p.ParseString("test.skin", testManifest)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if m.SkinName() != "meadow" {
		t.Fatalf("SkinName = %q, want meadow", m.SkinName())
	}
	vs := m.Variants()
	if len(vs) != 3 {
		t.Fatalf("got %d variant decls, want 3", len(vs))
	}
	if vs[1].Attribute != "body" || vs[1].Bend != "straight" {
		t.Fatalf("decl = %+v", vs[1])
	}
	if len(vs[1].Files) != 2 || vs[1].Files[0] != "b1.png" || vs[1].Files[1] != "b2.png" {
		t.Fatalf("files = %v", vs[1].Files)
	}
	if vs[1].Pos.Line != 5 {
		t.Fatalf("body decl at line %d, want 5", vs[1].Pos.Line)
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	_, err = p.ParseString("bad.skin", "skin \"x\";\nvariant head \"a.png\";\n")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr participle.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T does not wrap participle.Error", err)
	}
	if perr.Position().Line != 2 {
		t.Fatalf("error at line %d, want 2", perr.Position().Line)
	}
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadResolvesRelativeImages(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"head.png", "b1.png", "b2.png", "apple.png"} {
		writePNG(t, filepath.Join(dir, name), color.NRGBA{R: uint8(i * 40), A: 255})
	}
	path := filepath.Join(dir, "meadow.skin")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "meadow" {
		t.Fatalf("Name = %q", s.Name)
	}
	if s.Background == nil || *s.Background != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("Background = %v", s.Background)
	}
	body := s.Store.Lookup(board.Key(board.Body, board.Straight))
	if len(body) != 2 || body[0].Name() != "b1.png" || body[1].Name() != "b2.png" {
		t.Fatalf("body variants out of order: %v", body)
	}
	if got := s.Store.Len(); got != 4 {
		t.Fatalf("Len = %d, want 4", got)
	}

	cfg := s.RenderConfig(2)
	if cfg.NodeAspect != 2 || cfg.Background != s.Background {
		t.Fatalf("RenderConfig = %+v", cfg)
	}
}

func TestLoadMissingImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.skin")
	if err := os.WriteFile(path, []byte(`variant tail straight "nope.png";`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load: err = %v, want not-exist", err)
	}
}

func TestLoadUnknownTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.skin")
	if err := os.WriteFile(path, []byte(`variant wing straight "a.png";`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("unknown attribute should fail")
	}
}

func TestCheck(t *testing.T) {
	store := render.NewVariantStore()
	store.RegisterImage(board.Key(board.Head, board.Straight), "h", image.NewRGBA(image.Rect(0, 0, 1, 1)))

	err := Check(store, board.LiveKeys())
	if !errors.Is(err, ErrNoVariants) {
		t.Fatalf("Check: err = %v, want ErrNoVariants", err)
	}
	if err := Check(store, []board.VariantKey{board.Key(board.Head, board.Straight)}); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestBuiltinCoversLiveKeys(t *testing.T) {
	s, err := Builtin(24)
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if err := Check(s.Store, board.LiveKeys()); err != nil {
		t.Fatalf("Check: %v", err)
	}
	for _, k := range s.Store.Keys() {
		for _, v := range s.Store.Lookup(k) {
			if v.Size() != image.Pt(24, 24) {
				t.Fatalf("%s/%s is %v, want 24x24", k, v.Name(), v.Size())
			}
		}
	}
	if n := len(s.Store.Lookup(board.Key(board.Food, board.NoBend))); n != 3 {
		t.Fatalf("food variants = %d, want 3", n)
	}
}

func TestRasterizeIconTints(t *testing.T) {
	fg := color.NRGBA{R: 255, A: 255}
	bg := color.NRGBA{B: 255, A: 255}
	img, err := RasterizeIcon(builtinTiles[0].icon, 48, fg, bg)
	if err != nil {
		t.Fatalf("RasterizeIcon: %v", err)
	}
	var red, blue int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.B < 50 {
				red++
			}
			if c.B > 200 && c.R < 50 {
				blue++
			}
		}
	}
	if red == 0 || blue == 0 {
		t.Fatalf("red=%d blue=%d, want both icon and tile pixels", red, blue)
	}
}
