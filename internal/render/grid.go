package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-forms/internal/layout"
)

// Cell is one character cell of a Grid. Wide runes occupy two cells; the
// second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

func (c Cell) isContinuation() bool {
	return c.Width == 0
}

var blank = Cell{Rune: ' ', Width: 1}

// Grid is a 2D grid of cells a terminal preview is drawn into.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid of spaces. Negative sizes are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

// Rect returns the grid bounds as a Rect starting at (0, 0).
func (g *Grid) Rect() layout.Rect {
	return layout.NewRect(0, 0, g.width, g.height)
}

// idx converts (x, y) to a flat index, or -1 when out of bounds.
func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return g.cells[i]
}

func (g *Grid) setCell(x, y int, c Cell) {
	if i := g.idx(x, y); i >= 0 {
		g.cells[i] = c
	}
}

// SetRune writes r at (x, y), clearing any wide rune it overlaps.
// A wide rune that does not fit before the right edge becomes a space.
func (g *Grid) SetRune(x, y int, r rune) {
	if g.idx(x, y) < 0 {
		return
	}
	width := runewidth.RuneWidth(r)
	if width == 0 {
		width = 1
	}

	current := g.Cell(x, y)
	if current.isContinuation() && x > 0 {
		g.setCell(x-1, y, blank)
	}
	if current.Width == 2 {
		g.setCell(x+1, y, blank)
	}
	if width == 2 {
		if x+1 >= g.width {
			g.setCell(x, y, blank)
			return
		}
		if next := g.Cell(x+1, y); next.Width == 2 {
			g.setCell(x+2, y, blank)
		}
	}

	g.setCell(x, y, Cell{Rune: r, Width: uint8(width)})
	if width == 2 {
		g.setCell(x+1, y, Cell{Width: 0})
	}
}

// SetStringClipped writes s from (x, y), dropping runes outside clip.
// Returns the display width written.
func (g *Grid) SetStringClipped(x, y int, s string, clip layout.Rect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	cur := x
	for _, r := range s {
		width := max(runewidth.RuneWidth(r), 1)
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+width <= clip.Right() {
			g.SetRune(cur, y, r)
			written += width
		}
		cur += width
	}
	return written
}

// String renders the grid row by row, skipping continuation cells.
func (g *Grid) String() string {
	return g.render(false)
}

// StringTrimmed is String with trailing spaces removed from each row.
func (g *Grid) StringTrimmed() string {
	return g.render(true)
}

func (g *Grid) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.isContinuation() {
				continue
			}
			line.WriteRune(c.Rune)
		}
		row := line.String()
		if trim {
			row = strings.TrimRight(row, " ")
		}
		sb.WriteString(row)
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
