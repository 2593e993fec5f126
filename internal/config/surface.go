package config

import (
	"fmt"
	"os"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/layout"
	"github.com/grindlemire/go-forms/internal/measure"
)

// FormSurface builds the hosting surface described by the configuration.
// Positive width and height override the configured size. Pixel surfaces
// measure labels with the configured font. Cell surfaces keep their own
// defaults unless the configured ones were changed.
func (c Config) FormSurface(width, height int) (forms.Surface, error) {
	w, h := c.Surface.Width, c.Surface.Height
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	if c.Surface.Units == UnitsCells {
		s := forms.CellSurface(w, h)
		if host := c.Surface.Host(); host != layout.DefaultHost() {
			s.Defaults = host
		}
		return s, nil
	}

	s := forms.PixelSurface(w, h)
	face, err := c.Face()
	if err != nil {
		return forms.Surface{}, err
	}
	s.Measurer = face
	s.Defaults = c.Surface.Host()
	return s, nil
}

// Face opens the configured render font at the configured size.
func (c Config) Face() (*measure.Face, error) {
	data, err := c.FontData()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return measure.NewFace(c.Render.FontSize)
	}
	return measure.NewFaceFrom(data, c.Render.FontSize)
}

// FontData reads the configured font file, or returns nil when none is set.
func (c Config) FontData() ([]byte, error) {
	if c.Render.Font == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Render.Font)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	return data, nil
}
