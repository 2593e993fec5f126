package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/measure"
)

// Options controls PNG rendering.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
	// FontSize is the label size in unscaled pixels. Zero means measure.DefaultFontSize.
	FontSize float64
	// Font is an OpenType or TrueType font. Nil uses Go Regular.
	Font []byte
	// Background is a hex colour. Empty means white.
	Background string
	// Overlay draws the constraint segments over the controls.
	Overlay bool
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// overlayRGB maps Description colours to RGB.
var overlayRGB = map[string][3]int{
	"orange":         {255, 165, 0},
	"purple":         {128, 0, 128},
	"cornflowerblue": {100, 149, 237},
	"green":          {0, 128, 0},
	"pink":           {255, 192, 203},
}

// Image lays out f and draws it: controls as outlined rectangles with their
// names and, when requested, the constraint overlay.
func Image(f *forms.Form, opts Options) (image.Image, error) {
	dc, err := draw(f, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders f and encodes it as PNG to w.
func WritePNG(w io.Writer, f *forms.Form, opts Options) error {
	dc, err := draw(f, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders f to a PNG file at path.
func SavePNG(path string, f *forms.Form, opts Options) error {
	dc, err := draw(f, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func draw(f *forms.Form, opts Options) (*gg.Context, error) {
	if err := f.Layout(); err != nil {
		return nil, err
	}
	scale := opts.scale()
	size := opts.FontSize
	if size <= 0 {
		size = measure.DefaultFontSize
	}
	var face *measure.Face
	var err error
	if opts.Font != nil {
		face, err = measure.NewFaceFrom(opts.Font, size*scale)
	} else {
		face, err = measure.NewFace(size * scale)
	}
	if err != nil {
		return nil, err
	}
	defer face.Close()

	s := f.Surface()
	w := int(math.Ceil(float64(s.Width) * scale))
	h := int(math.Ceil(float64(s.Height) * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface %dx%d has nothing to draw", s.Width, s.Height)
	}

	dc := gg.NewContext(w, h)
	if opts.Background == "" {
		dc.SetRGB(1, 1, 1)
	} else {
		dc.SetHexColor(opts.Background)
	}
	dc.Clear()
	dc.SetFontFace(face.FontFace())

	tree := f.Tree()
	root := tree.Root()
	tree.Walk(root, func(id forms.NodeID) {
		if id == root {
			return
		}
		rect, ok := tree.AbsRect(id)
		if !ok {
			return
		}
		x, y := float64(rect.X)*scale, float64(rect.Y)*scale
		rw, rh := float64(rect.Width)*scale, float64(rect.Height)*scale
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, rw-1, rh-1)
		dc.Stroke()
		if name := tree.Name(id); name != "" {
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(name, x+rw/2, y+rh/2, 0.5, 0.35)
		}
	})

	if opts.Overlay {
		descs, err := f.Overlay()
		if err != nil {
			return nil, err
		}
		for _, d := range descs {
			drawSegments(dc, tree, d, scale)
		}
	}
	return dc, nil
}

// drawSegments strokes the segments of d, shifted into surface space by the
// absolute position of the constraint's parent.
func drawSegments(dc *gg.Context, tree *forms.Tree, d forms.Description, scale float64) {
	var origin forms.Point
	if d.Parent != tree.Root() {
		if pr, ok := tree.AbsRect(d.Parent); ok {
			origin = pr.Origin()
		}
	}
	rgb, ok := overlayRGB[d.Color]
	if !ok {
		rgb = [3]int{255, 0, 0}
	}
	dc.SetRGB255(rgb[0], rgb[1], rgb[2])
	dc.SetLineWidth(2)
	for _, s := range d.Segments {
		s = s.Translate(origin)
		x1, y1 := s.From.Scaled(scale)
		x2, y2 := s.To.Scaled(scale)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		dc.DrawCircle(x2, y2, 2.5)
		dc.Fill()
	}
}
