package measure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSize is the pixel size used when none is configured.
const DefaultFontSize = 13

// Face measures text in pixels with an OpenType font face.
type Face struct {
	face font.Face
	size float64
}

// NewFace loads Go Regular at size pixels (72 DPI).
func NewFace(size float64) (*Face, error) {
	return NewFaceFrom(goregular.TTF, size)
}

// NewFaceFrom parses an OpenType or TrueType font and opens it at size pixels.
func NewFaceFrom(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opening face: %w", err)
	}
	return &Face{face: face, size: size}, nil
}

func (f *Face) Width(text string) float64 {
	return widest(text, func(s string) float64 {
		adv := font.MeasureString(f.face, s)
		return float64(adv) / 64
	})
}

// LineHeight is the font size plus three pixels of leading.
func (f *Face) LineHeight() int {
	return int(f.size) + 3
}

// FontFace exposes the underlying face for drawing.
func (f *Face) FontFace() font.Face {
	return f.face
}

// Size returns the font size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

func (f *Face) Close() error {
	return f.face.Close()
}
