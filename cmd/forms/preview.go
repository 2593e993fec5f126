package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/config"
	"github.com/grindlemire/go-forms/internal/render"
)

// Fallback size when stdout is not a terminal.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// previewFlags are shared by preview, play and watch.
type previewFlags struct {
	configPath string
	border     string
	width      int
	height     int
}

func (p *previewFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.configPath, "config", config.DefaultFile, "Configuration file")
	fs.StringVar(&p.border, "border", "", "Border style (default from config)")
	fs.IntVar(&p.width, "width", 0, "Columns (default: terminal width)")
	fs.IntVar(&p.height, "height", 0, "Rows (default: terminal height)")
}

// setup loads the configuration and resolves the size and border style.
func (p *previewFlags) setup() (config.Config, render.BorderStyle, error) {
	cfg, err := loadConfig(p.configPath)
	if err != nil {
		return config.Config{}, 0, err
	}

	name := cfg.Render.Border
	if p.border != "" {
		name = p.border
	}
	border, err := render.ParseBorderStyle(name)
	if err != nil {
		return config.Config{}, 0, err
	}

	if p.width <= 0 || p.height <= 0 {
		cols, rows := fallbackCols, fallbackRows
		if s, err := forms.TerminalSurface(int(os.Stdout.Fd())); err == nil {
			cols, rows = s.Width, s.Height
		}
		if p.width <= 0 {
			p.width = cols
		}
		if p.height <= 0 {
			p.height = rows
		}
	}
	return cfg, border, nil
}

// open builds path in cells at the preview size, whatever units the
// document declares.
func (p *previewFlags) open(path string, cfg config.Config, opts ...forms.FormOption) (*opened, error) {
	return openForm(path, cfg, config.UnitsCells, p.width, p.height, opts...)
}

// runPreview implements the preview subcommand.
func runPreview(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(w)
	var pf previewFlags
	pf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("preview takes exactly one form file")
	}

	cfg, border, err := pf.setup()
	if err != nil {
		return err
	}
	return drawPreview(w, fs.Arg(0), cfg, border, &pf)
}

// drawPreview lays out the form at path and prints the grid and its rect table.
func drawPreview(w io.Writer, path string, cfg config.Config, border render.BorderStyle, pf *previewFlags) error {
	o, err := pf.open(path, cfg)
	if err != nil {
		return err
	}
	g, err := render.Preview(o.form, border)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintln(w, g.StringTrimmed())
	fmt.Fprintln(w, rectTable(o.form, o.built.Controls))
	return nil
}

// rectTable lists the solved geometry of every named control, by name.
func rectTable(f *forms.Form, controls map[string]forms.NodeID) string {
	names := make([]string, 0, len(controls))
	for name := range controls {
		names = append(names, name)
	}
	slices.Sort(names)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Control", "X", "Y", "W", "H").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, name := range names {
		r, ok := f.Tree().AbsRect(controls[name])
		if !ok {
			t.Row(name, "?", "?", "?", "?")
			continue
		}
		t.Row(name, strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.Width), strconv.Itoa(r.Height))
	}
	return t.String()
}
