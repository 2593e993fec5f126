package forms

import (
	"math"

	"github.com/grindlemire/go-forms/internal/layout"
	"github.com/grindlemire/go-forms/internal/measure"
)

// Label is a control sized by its text. While Fit is set the label measures
// itself before constraints run, so constraints should only place it.
type Label struct {
	text string
	fit  bool
	tree *layout.Tree
}

// AddLabel creates a text label under parent and fixes the pinned coordinates.
func (f *Form) AddLabel(parent NodeID, text string, pins ...Pin) (NodeID, *Label, error) {
	l := &Label{text: text, fit: true, tree: f.tree}
	id, err := f.tree.Add(parent, Named(text), WithSelfConstrainer(l))
	if err != nil {
		return layout.NoNode, nil, err
	}
	if _, err := f.tree.Place(id, pins...); err != nil {
		return id, l, err
	}
	return id, l, nil
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText changes the text and requests a re-layout if it differs.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.markDirty()
}

// SetFit turns self-sizing on or off. A label that does not fit is sized
// by its constraints or the surface defaults.
func (l *Label) SetFit(fit bool) {
	if l.fit == fit {
		return
	}
	l.fit = fit
	l.markDirty()
}

func (l *Label) markDirty() {
	if l.tree != nil {
		l.tree.MarkDirty()
	}
}

// SelfConstrain sets the width to the widest line plus padding and the
// height to one line height per line, never below the default height.
func (l *Label) SelfConstrain(s Seed) bool {
	if !l.fit {
		return false
	}
	var m measure.Measurer = measure.Cells{}
	padding := 0
	if surf, ok := s.Host().(Surface); ok {
		m = surf.measurer()
		padding = surf.LabelPadding
	}
	lines := len(measure.Lines(l.text))
	s.Set(W, int(math.Ceil(m.Width(l.text)))+padding)
	s.Set(H, max(s.Host().DefaultSize(Vertical), lines*m.LineHeight()))
	return true
}

// Cover makes a control fill its parent exactly, for modal layers.
func Cover() SelfConstrainer {
	return SelfConstrainFunc(func(s Seed) bool {
		s.Set(X, 0)
		s.Set(Y, 0)
		s.Set(X2, 0)
		s.Set(Y2, 0)
		return true
	})
}

// Row gives a control the surface's default height, for list items.
func Row() SelfConstrainer {
	return SelfConstrainFunc(func(s Seed) bool {
		s.Set(H, s.Host().DefaultSize(Vertical))
		return true
	})
}
