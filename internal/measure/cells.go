package measure

import "github.com/mattn/go-runewidth"

// Cells measures text in terminal cells. Wide runes take two columns.
type Cells struct{}

func (Cells) Width(text string) float64 {
	return widest(text, func(s string) float64 {
		return float64(runewidth.StringWidth(s))
	})
}

func (Cells) LineHeight() int {
	return 1
}
