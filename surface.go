package forms

import (
	"fmt"

	"golang.org/x/term"

	"github.com/grindlemire/go-forms/internal/layout"
	"github.com/grindlemire/go-forms/internal/measure"
)

// Surface is the hosting surface: its size, the geometry it gives controls
// nothing else constrains, and how it measures text.
type Surface struct {
	Width, Height int

	// Defaults for unconstrained axes.
	Defaults layout.FixedHost

	// Measurer sizes Label text. Nil measures in cells.
	Measurer measure.Measurer

	// LabelPadding is added to measured label widths.
	LabelPadding int
}

// PixelSurface returns a surface measured in pixels with 160x32 default
// controls placed 10 pixels in.
func PixelSurface(width, height int) Surface {
	return Surface{
		Width:        width,
		Height:       height,
		Defaults:     layout.DefaultHost(),
		LabelPadding: 10,
	}
}

// CellSurface returns a surface measured in terminal cells. Default controls
// are three rows tall so a bordered box has room for one line of text.
func CellSurface(cols, rows int) Surface {
	return Surface{
		Width:        cols,
		Height:       rows,
		Defaults:     layout.FixedHost{Width: 16, Height: 3, StartX: 1, StartY: 1},
		Measurer:     measure.Cells{},
		LabelPadding: 2,
	}
}

// TerminalSurface returns a cell surface sized to the terminal on fd.
func TerminalSurface(fd int) (Surface, error) {
	if !term.IsTerminal(fd) {
		return Surface{}, fmt.Errorf("fd %d is not a terminal", fd)
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return Surface{}, fmt.Errorf("reading terminal size: %w", err)
	}
	return CellSurface(cols, rows), nil
}

func (s Surface) DefaultSize(axis Axis) int {
	return s.Defaults.DefaultSize(axis)
}

func (s Surface) DefaultStart(axis Axis) int {
	return s.Defaults.DefaultStart(axis)
}

func (s Surface) measurer() measure.Measurer {
	if s.Measurer == nil {
		return measure.Cells{}
	}
	return s.Measurer
}

func (s Surface) validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("surface size %dx%d must not be negative", s.Width, s.Height)
	}
	if s.Defaults.Width < 0 || s.Defaults.Height < 0 {
		return fmt.Errorf("default control size %dx%d must not be negative", s.Defaults.Width, s.Defaults.Height)
	}
	return nil
}
