package formfile

import (
	"errors"
	"strings"
	"testing"

	forms "github.com/grindlemire/go-forms"
)

func newForm(t *testing.T, w, h int) *forms.Form {
	t.Helper()
	f, err := forms.New(forms.WithSurface(forms.PixelSurface(w, h)))
	if err != nil {
		t.Fatalf("forms.New() error = %v", err)
	}
	return f
}

func buildString(t *testing.T, f *forms.Form, src string) (*Built, error) {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return Build(doc, f)
}

func TestBuild_Layout(t *testing.T) {
	type tc struct {
		width, height int
		src           string
		want          map[string]forms.Rect
	}

	tests := map[string]tc{
		"buttons anchored bottom right": {
			width: 320, height: 200,
			src: `
controls:
  - name: ok
    place: {x2: 10, y2: 10, w: 80}
  - name: cancel
constraints:
  - align: {a: cancel.x2, b: ok.x2w, offset: 10}
  - align: {a: cancel.y, b: ok.y}
`,
			want: map[string]forms.Rect{
				"ok":     forms.NewRect(230, 158, 80, 32),
				"cancel": forms.NewRect(60, 158, 160, 32),
			},
		},
		"nested controls and helpers": {
			width: 300, height: 200,
			src: `
controls:
  - name: toolbar
    place: {x: 0, y: 0, x2: 0, h: 40}
    children:
      - {name: a}
      - {name: b}
      - {name: c}
  - name: dialog
    children:
      - {kind: label, text: Hi, place: {x: 5, y: 5}}
  - name: overlay
    kind: cover
  - name: item
    kind: row
    place: {x: 0, y: 100, w: 50}
constraints:
  - fill_parent: {controls: [a, b, c], axis: horizontal}
  - size: {control: dialog, width: 100, height: 50}
  - center: {control: dialog, axis: x}
  - center: {control: dialog, axis: vertical}
`,
			want: map[string]forms.Rect{
				"toolbar": forms.NewRect(0, 0, 300, 40),
				"a":       forms.NewRect(0, 10, 100, 32),
				"b":       forms.NewRect(100, 10, 100, 32),
				"c":       forms.NewRect(200, 10, 100, 32),
				"dialog":  forms.NewRect(100, 75, 100, 50),
				"Hi":      forms.NewRect(5, 5, 12, 32),
				"overlay": forms.NewRect(0, 0, 300, 200),
				"item":    forms.NewRect(0, 100, 50, 32),
			},
		},
		"fit and sized center": {
			width: 200, height: 100,
			src: `
controls:
  - name: panel
    place: {x: 0, y: 0}
    children:
      - name: p1
        place: {y: 0, w: 40, h: 20}
  - name: bar
    place: {y: 60, h: 10}
constraints:
  - fit: {control: panel, axis: horizontal, padding: 4}
  - fit: {control: panel, axis: y, min: 30}
  - center: {control: bar, axis: horizontal, size: 50}
  - static: {ref: p1.x, value: 2}
`,
			want: map[string]forms.Rect{
				"panel": forms.NewRect(0, 0, 46, 30),
				"p1":    forms.NewRect(2, 0, 40, 20),
				"bar":   forms.NewRect(75, 60, 50, 10),
			},
		},
		"fill by ratio": {
			width: 400, height: 100,
			src: `
controls:
  - {name: left, place: {x: 0, y: 0}}
  - {name: right, place: {x2: 0, y: 0}}
constraints:
  - align: {a: right.x, b: left.xw}
  - fill: {refs: [left.w, right.w], ratios: [1, 3]}
`,
			want: map[string]forms.Rect{
				"left":  forms.NewRect(0, 0, 100, 32),
				"right": forms.NewRect(100, 0, 300, 32),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newForm(t, tt.width, tt.height)
			built, err := buildString(t, f, tt.src)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if err := f.Layout(); err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			for control, want := range tt.want {
				id, ok := built.Controls[control]
				if !ok {
					t.Errorf("control %q not built", control)
					continue
				}
				got, ok := f.Rect(id)
				if !ok {
					t.Errorf("Rect(%s) unresolved", control)
					continue
				}
				if got != want {
					t.Errorf("Rect(%s) = %+v, want %+v", control, got, want)
				}
			}
		})
	}
}

func TestBuild_LabelsAndAnimators(t *testing.T) {
	f := newForm(t, 300, 200)
	built, err := buildString(t, f, `
controls:
  - {name: title, kind: label, text: Hello, fit: false, place: {x: 0, y: 0}}
  - {name: box}
constraints:
  - static: {ref: box.x, value: 0, animate: {to: 100, duration: 200ms, easing: ease-in-out-cubic, loop: true}}
`)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	l, ok := built.Labels["title"]
	if !ok {
		t.Fatal("label title not recorded")
	}
	if l.Text() != "Hello" {
		t.Errorf("Text() = %q, want Hello", l.Text())
	}
	if err := f.Layout(); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if r, _ := f.Rect(built.Controls["title"]); r.Width != 160 {
		t.Errorf("unfitted label width = %d, want the default 160", r.Width)
	}
	if len(built.Animators) != 1 {
		t.Fatalf("Animators = %d, want 1", len(built.Animators))
	}
	if !f.Animating() {
		t.Error("Animating() = false, want true")
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		src     string
		wantErr error
		wantMsg string
	}

	tests := map[string]tc{
		"duplicate name": {
			src:     "controls: [{name: a}, {name: a}]",
			wantErr: ErrDuplicateName,
		},
		"unknown control kind": {
			src:     "controls: [{name: a, kind: slider}]",
			wantErr: ErrUnknownKind,
		},
		"bad place key": {
			src:     "controls: [{name: a, place: {left: 3}}]",
			wantMsg: `unknown coordinate "left"`,
		},
		"unknown control in ref": {
			src:     "controls: [{name: a}]\nconstraints: [{static: {ref: b.x, value: 1}}]",
			wantErr: ErrUnknownControl,
			wantMsg: "constraint 0 (static)",
		},
		"ref without coordinate": {
			src:     "controls: [{name: a}]\nconstraints: [{static: {ref: a, value: 1}}]",
			wantErr: ErrBadRef,
		},
		"ref with bad coordinate": {
			src:     "controls: [{name: a}]\nconstraints: [{static: {ref: a.zz, value: 1}}]",
			wantErr: ErrBadRef,
		},
		"no kind": {
			src:     "controls: [{name: a}]\nconstraints: [{}]",
			wantErr: ErrBadConstraint,
		},
		"two kinds": {
			src:     "controls: [{name: a}]\nconstraints: [{static: {ref: a.x}, center: {control: a, axis: x}}]",
			wantErr: ErrBadConstraint,
			wantMsg: "[static, center]",
		},
		"fill mixes coordinates": {
			src:     "controls: [{name: a}, {name: b}]\nconstraints: [{fill: {refs: [a.w, b.h]}}]",
			wantErr: ErrBadRef,
		},
		"fill on a position": {
			src:     "controls: [{name: a}, {name: b}]\nconstraints: [{fill: {refs: [a.x, b.x]}}]",
			wantErr: forms.ErrInvalidFill,
		},
		"bad axis": {
			src:     "controls: [{name: a}]\nconstraints: [{center: {control: a, axis: diagonal}}]",
			wantMsg: `unknown axis "diagonal"`,
		},
		"unknown easing": {
			src:     "controls: [{name: a}]\nconstraints: [{static: {ref: a.x, value: 0, animate: {to: 1, easing: bouncy}}}]",
			wantMsg: "bouncy",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := buildString(t, newForm(t, 100, 100), tt.src)
			if err == nil {
				t.Fatal("Build() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build() error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}
