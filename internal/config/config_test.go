package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BoardSize() != (board.Size{W: 20, H: 20}) {
		t.Fatalf("BoardSize = %v, want 20x20", cfg.BoardSize())
	}
	if cfg.Tick != 150*time.Millisecond {
		t.Fatalf("Tick = %s", cfg.Tick)
	}
}

func TestPathRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "gridcanvas", "config.yml")
	if got := Path(); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "board_width: 30\nboard_height: 10\nnode_aspect: 2\ntick: 80ms\nbackground: \"#112233\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BoardWidth != 30 || cfg.BoardHeight != 10 {
		t.Fatalf("size = %dx%d, want 30x10", cfg.BoardWidth, cfg.BoardHeight)
	}
	if cfg.NodeAspect != 2 || cfg.Tick != 80*time.Millisecond {
		t.Fatalf("aspect=%v tick=%s", cfg.NodeAspect, cfg.Tick)
	}
	if cfg.CellPixels != 32 {
		t.Fatalf("unset field lost its default: CellPixels = %d", cfg.CellPixels)
	}
	c, err := cfg.BackgroundColor()
	if err != nil || c != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}) {
		t.Fatalf("BackgroundColor = %v, %v", c, err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("board_width: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRIDCANVAS_BOARD_WIDTH", "12")
	t.Setenv("GRIDCANVAS_TICK", "1s")
	t.Setenv("GRIDCANVAS_THEME", "nord")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BoardWidth != 12 {
		t.Fatalf("BoardWidth = %d, want 12", cfg.BoardWidth)
	}
	if cfg.Tick != time.Second {
		t.Fatalf("Tick = %s, want 1s", cfg.Tick)
	}
	if cfg.Theme != "nord" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"bad int", "GRIDCANVAS_BOARD_WIDTH", "wide"},
		{"zero width", "GRIDCANVAS_BOARD_WIDTH", "0"},
		{"bad tick", "GRIDCANVAS_TICK", "soon"},
		{"bad aspect", "GRIDCANVAS_NODE_ASPECT", "tall"},
		{"bad colour", "GRIDCANVAS_BACKGROUND", "#nothex"},
		{"bad theme", "GRIDCANVAS_THEME", "sepia"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			if _, err := LoadFile(""); err == nil {
				t.Fatalf("%s=%q should fail", tt.env, tt.val)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	cfg := Default()
	cfg.Skin = "/tmp/meadow.skin"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}
