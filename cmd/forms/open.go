package main

import (
	"fmt"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/config"
	"github.com/grindlemire/go-forms/internal/debug"
	"github.com/grindlemire/go-forms/internal/formfile"
)

// loadConfig reads the configuration file and starts the debug log it names.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Debug.Log != "" {
		if err := debug.Init(cfg.Debug.Log); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// opened is a form document built into a form, before layout.
type opened struct {
	doc   *formfile.Document
	form  *forms.Form
	built *formfile.Built
}

// openForm loads the document at path and builds it. The document's surface
// overrides the configuration; a non-empty units and positive width and
// height override both.
func openForm(path string, cfg config.Config, units string, width, height int, opts ...forms.FormOption) (*opened, error) {
	doc, err := formfile.Load(path)
	if err != nil {
		return nil, err
	}
	if units == "" {
		units = doc.Surface.Units
	}
	if units != "" {
		cfg.Surface.Units = units
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if width <= 0 {
		width = doc.Surface.Width
	}
	if height <= 0 {
		height = doc.Surface.Height
	}
	surface, err := cfg.FormSurface(width, height)
	if err != nil {
		return nil, err
	}

	opts = append([]forms.FormOption{
		forms.WithSurface(surface),
		forms.WithMaxRounds(cfg.Layout.MaxRounds),
	}, opts...)
	f, err := forms.New(opts...)
	if err != nil {
		return nil, err
	}
	built, err := formfile.Build(doc, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &opened{doc: doc, form: f, built: built}, nil
}
