package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	forms "github.com/grindlemire/go-forms"
)

func newPixelForm(t *testing.T) *forms.Form {
	t.Helper()
	f, err := forms.New(forms.WithSurface(forms.PixelSurface(100, 60)))
	if err != nil {
		t.Fatalf("forms.New() error = %v", err)
	}
	if _, err := f.AddAt(f.Root(), "a", forms.At(forms.X, 10), forms.At(forms.Y, 10), forms.At(forms.W, 40), forms.At(forms.H, 20)); err != nil {
		t.Fatalf("AddAt() error = %v", err)
	}
	return f
}

func rgb(img image.Image, x, y int) (r, g, b uint8) {
	c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	return c.R, c.G, c.B
}

func TestImage(t *testing.T) {
	type tc struct {
		opts  Options
		size  image.Point
		check func(t *testing.T, img image.Image)
	}

	tests := map[string]tc{
		"outline on white": {
			size: image.Pt(100, 60),
			check: func(t *testing.T, img image.Image) {
				if r, g, b := rgb(img, 80, 50); r != 255 || g != 255 || b != 255 {
					t.Errorf("background = (%d,%d,%d), want white", r, g, b)
				}
				if r, _, _ := rgb(img, 10, 25); r > 128 {
					t.Errorf("left edge red = %d, want a dark outline", r)
				}
			},
		},
		"scaled": {
			opts: Options{Scale: 2},
			size: image.Pt(200, 120),
			check: func(t *testing.T, img image.Image) {
				if r, _, _ := rgb(img, 20, 50); r > 128 {
					t.Errorf("left edge red = %d, want a dark outline", r)
				}
			},
		},
		"background": {
			opts: Options{Background: "#000000"},
			size: image.Pt(100, 60),
			check: func(t *testing.T, img image.Image) {
				if r, g, b := rgb(img, 80, 50); r != 0 || g != 0 || b != 0 {
					t.Errorf("background = (%d,%d,%d), want black", r, g, b)
				}
			},
		},
		"overlay": {
			opts: Options{Overlay: true},
			size: image.Pt(100, 60),
			check: func(t *testing.T, img image.Image) {
				// the static x segment runs from the left edge to x=10 a third of the way down
				r, g, b := rgb(img, 5, 16)
				if r > 150 || b < 200 {
					t.Errorf("x segment = (%d,%d,%d), want cornflowerblue", r, g, b)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img, err := Image(newPixelForm(t), tt.opts)
			if err != nil {
				t.Fatalf("Image() error = %v", err)
			}
			if got := img.Bounds().Size(); got != tt.size {
				t.Fatalf("size = %v, want %v", got, tt.size)
			}
			tt.check(t, img)
		})
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, newPixelForm(t), Options{}); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 60 {
		t.Errorf("decoded size = %dx%d, want 100x60", cfg.Width, cfg.Height)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.png")
	if err := SavePNG(path, newPixelForm(t), Options{Overlay: true}); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Stat(%s) = %v, %v; want a non-empty file", path, info, err)
	}
}

func TestImage_Errors(t *testing.T) {
	type tc struct {
		form func(t *testing.T) *forms.Form
		opts Options
	}

	tests := map[string]tc{
		"empty surface": {
			form: func(t *testing.T) *forms.Form {
				f, err := forms.New(forms.WithSurface(forms.PixelSurface(0, 0)))
				if err != nil {
					t.Fatalf("forms.New() error = %v", err)
				}
				return f
			},
		},
		"bad font": {
			form: newPixelForm,
			opts: Options{Font: []byte("not a font")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Image(tt.form(t), tt.opts); err == nil {
				t.Error("Image() error = nil, want error")
			}
		})
	}
}
