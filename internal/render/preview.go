package render

import (
	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/layout"
)

// Preview lays out f and draws every control on a grid the size of the
// form's surface: an outline plus the control's name on its first inner row.
// Controls too short for an inner row carry the name on their top edge.
func Preview(f *forms.Form, border BorderStyle) (*Grid, error) {
	if err := f.Layout(); err != nil {
		return nil, err
	}
	return Draw(f, border), nil
}

// Draw is Preview without the layout pass, for painters called after a
// frame has already laid the form out. Unresolved controls are skipped.
func Draw(f *forms.Form, border BorderStyle) *Grid {
	s := f.Surface()
	g := NewGrid(s.Width, s.Height)
	tree := f.Tree()
	root := tree.Root()

	tree.Walk(root, func(id forms.NodeID) {
		if id == root {
			return
		}
		rect, ok := tree.AbsRect(id)
		if !ok || rect.IsEmpty() {
			return
		}
		DrawBox(g, rect, border)
		drawName(g, rect, tree.Name(id))
	})
	return g
}

func drawName(g *Grid, rect layout.Rect, name string) {
	if name == "" {
		return
	}
	if rect.Height >= 3 && rect.Width > 2 {
		inner := layout.NewRect(rect.X+1, rect.Y+1, rect.Width-2, rect.Height-2)
		g.SetStringClipped(inner.X, inner.Y, name, inner.Intersect(g.Rect()))
		return
	}
	g.SetStringClipped(rect.X+1, rect.Y, name, layout.NewRect(rect.X+1, rect.Y, rect.Width-2, 1).Intersect(g.Rect()))
}
