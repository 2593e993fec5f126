// Package measure reports text extents for self-sizing labels.
//
// Cells measures in terminal columns and rows. Face measures in pixels with
// an OpenType face, Go Regular unless another font is supplied.
package measure

import "strings"

// Measurer reports the extent of text in surface units.
type Measurer interface {
	// Width returns the advance of the widest line.
	Width(text string) float64

	// LineHeight returns the height given to one line of text.
	LineHeight() int
}

// Lines splits text on newlines. Empty text is one empty line.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

func widest(text string, width func(string) float64) float64 {
	w := 0.0
	for _, line := range Lines(text) {
		w = max(w, width(line))
	}
	return w
}
