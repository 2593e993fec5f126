package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/config"
	"github.com/grindlemire/go-forms/internal/render"
)

// runRender implements the render subcommand.
// It lays out one form and writes it as a PNG image.
func runRender(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(w)
	output := fs.String("o", "", "Output file (default: the input name with .png)")
	overlay := fs.Bool("overlay", false, "Draw constraint segments")
	scale := fs.Float64("scale", 0, "Scale factor (default from config)")
	terminal := fs.Bool("terminal", false, "Size the surface to the terminal window in pixels")
	configPath := fs.String("config", config.DefaultFile, "Configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("render takes exactly one form file")
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	var units string
	var width, height int
	if *terminal {
		width, height, err = forms.TerminalPixels(int(os.Stdout.Fd()))
		if err != nil {
			return err
		}
		units = config.UnitsPixels
	}
	o, err := openForm(path, cfg, units, width, height)
	if err != nil {
		return err
	}

	font, err := cfg.FontData()
	if err != nil {
		return err
	}
	opts := render.Options{
		Scale:      cfg.Render.Scale,
		FontSize:   cfg.Render.FontSize,
		Font:       font,
		Background: cfg.Render.Background,
		Overlay:    cfg.Render.Overlay || *overlay,
	}
	if *scale > 0 {
		opts.Scale = *scale
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := render.SavePNG(out, o.form, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote %s\n", out)
	return nil
}
