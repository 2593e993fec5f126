// Package config loads the forms CLI configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-forms/internal/layout"
)

// DefaultFile is the configuration file the CLI looks for when -config is not given.
const DefaultFile = "forms.toml"

// Config is the CLI configuration.
type Config struct {
	Surface Surface `toml:"surface"`
	Layout  Layout  `toml:"layout"`
	Render  Render  `toml:"render"`
	Debug   Debug   `toml:"debug"`
}

// Surface describes the hosting surface forms are solved against when the
// form document does not give a size.
type Surface struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	DefaultWidth  int    `toml:"default_width"`
	DefaultHeight int    `toml:"default_height"`
	StartX        int    `toml:"start_x"`
	StartY        int    `toml:"start_y"`
	Units         string `toml:"units"`
}

// Layout tunes the solver.
type Layout struct {
	MaxRounds int `toml:"max_rounds"`
}

// Render controls PNG output.
type Render struct {
	Scale      float64 `toml:"scale"`
	FontSize   float64 `toml:"font_size"`
	Overlay    bool    `toml:"overlay"`
	Background string  `toml:"background"`
	Font       string  `toml:"font"`
	Border     string  `toml:"border"`
}

// Debug configures the debug log.
type Debug struct {
	Log string `toml:"log"`
}

// Units accepted by Surface.Units.
const (
	UnitsPixels = "pixels"
	UnitsCells  = "cells"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	h := layout.DefaultHost()
	return Config{
		Surface: Surface{
			Width:         640,
			Height:        480,
			DefaultWidth:  h.Width,
			DefaultHeight: h.Height,
			StartX:        h.StartX,
			StartY:        h.StartY,
			Units:         UnitsPixels,
		},
		Layout: Layout{MaxRounds: layout.DefaultMaxRounds},
		Render: Render{Scale: 1, FontSize: 13, Border: "single"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	s := c.Surface
	switch {
	case s.Width < 0 || s.Height < 0:
		return fmt.Errorf("surface size %dx%d must not be negative", s.Width, s.Height)
	case s.DefaultWidth < 0 || s.DefaultHeight < 0:
		return fmt.Errorf("default control size %dx%d must not be negative", s.DefaultWidth, s.DefaultHeight)
	case s.Units != UnitsPixels && s.Units != UnitsCells:
		return fmt.Errorf("surface units %q must be %q or %q", s.Units, UnitsPixels, UnitsCells)
	case c.Layout.MaxRounds < 1:
		return fmt.Errorf("layout max_rounds must be at least 1, got %d", c.Layout.MaxRounds)
	case c.Render.Scale <= 0:
		return fmt.Errorf("render scale must be positive, got %g", c.Render.Scale)
	case c.Render.FontSize <= 0:
		return fmt.Errorf("render font_size must be positive, got %g", c.Render.FontSize)
	}
	return nil
}

// Host returns the default geometry for unconstrained axes.
func (s Surface) Host() layout.FixedHost {
	return layout.FixedHost{
		Width:  s.DefaultWidth,
		Height: s.DefaultHeight,
		StartX: s.StartX,
		StartY: s.StartY,
	}
}
