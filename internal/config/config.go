// Package config handles the gridcanvas user configuration.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/render"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "gridcanvas"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GRIDCANVAS_"
)

// Config represents configuration stored in ~/.config/gridcanvas/config.yml.
type Config struct {
	BoardWidth  int           `yaml:"board_width"`
	BoardHeight int           `yaml:"board_height"`
	NodeAspect  float64       `yaml:"node_aspect"`
	Tick        time.Duration `yaml:"tick"`
	Background  string        `yaml:"background,omitempty"` // hex colour, overrides the theme
	Theme       string        `yaml:"theme"`
	Skin        string        `yaml:"skin,omitempty"` // manifest path; empty uses the builtin skin
	CellPixels  int           `yaml:"cell_pixels"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		BoardWidth:  20,
		BoardHeight: 20,
		NodeAspect:  1,
		Tick:        150 * time.Millisecond,
		Theme:       "classic",
		CellPixels:  32,
		LogLevel:    "info",
	}
}

// BoardSize returns the configured grid size.
func (c *Config) BoardSize() board.Size {
	return board.Size{W: c.BoardWidth, H: c.BoardHeight}
}

// BackgroundColor resolves Background, falling back to the theme colour.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	if c.Background != "" {
		return render.ParseHexColor(c.Background)
	}
	t, err := render.ParseTheme(c.Theme)
	if err != nil {
		return color.NRGBA{}, err
	}
	return t.Background(), nil
}

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/gridcanvas/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the default config file and applies environment overrides.
// A missing file yields the defaults, not an error.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	if !c.BoardSize().Valid() {
		return fmt.Errorf("invalid board size %s", c.BoardSize())
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"BOARD_WIDTH":  &c.BoardWidth,
		"BOARD_HEIGHT": &c.BoardHeight,
		"CELL_PIXELS":  &c.CellPixels,
	}
	for name, dst := range ints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"BACKGROUND": &c.Background,
		"THEME":      &c.Theme,
		"SKIN":       &c.Skin,
		"LOG_LEVEL":  &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "NODE_ASPECT"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%sNODE_ASPECT: %w", EnvPrefix, err)
		}
		c.NodeAspect = f
	}
	if v, ok := lookup(EnvPrefix + "TICK"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sTICK: %w", EnvPrefix, err)
		}
		c.Tick = d
	}
	return nil
}
