package render

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-forms/internal/layout"
)

// BorderStyle selects the box-drawing characters used for control outlines.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderRounded
	BorderThick
	BorderASCII
)

// ParseBorderStyle accepts single, double, rounded, thick and ascii.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return BorderSingle, nil
	case "double":
		return BorderDouble, nil
	case "rounded":
		return BorderRounded, nil
	case "thick":
		return BorderThick, nil
	case "ascii":
		return BorderASCII, nil
	}
	return 0, fmt.Errorf("unknown border style %q", s)
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// DrawBox outlines rect on the grid. Edges outside the grid are skipped, so
// partly visible controls still show the edges that are on screen.
func DrawBox(g *Grid, rect layout.Rect, border BorderStyle) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	chars := border.Chars()

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	for x := left + 1; x < right; x++ {
		g.SetRune(x, top, chars.Top)
		g.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		g.SetRune(left, y, chars.Left)
		g.SetRune(right, y, chars.Right)
	}
	g.SetRune(left, top, chars.TopLeft)
	g.SetRune(right, top, chars.TopRight)
	g.SetRune(left, bottom, chars.BottomLeft)
	g.SetRune(right, bottom, chars.BottomRight)
}
