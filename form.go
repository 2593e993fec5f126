package forms

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-forms/internal/anim"
	"github.com/grindlemire/go-forms/internal/layout"
)

// Painter draws a laid out form. It is called from the frame tick after any
// pending layout has run.
type Painter interface {
	Paint(f *Form) error
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(f *Form) error

func (p PainterFunc) Paint(f *Form) error {
	return p(f)
}

// Form owns a constraint tree and the surface it is solved against.
// Layout requests coalesce: any number of changes between two frames cost
// one layout pass.
type Form struct {
	tree    *layout.Tree
	surface Surface
	painter Painter
	repaint atomic.Bool

	animators []*anim.Animator

	// Configuration (set via options)
	frameDuration time.Duration
	maxRounds     int
	queueSize     int

	updates  chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a form on a 640x480 pixel surface unless WithSurface says otherwise.
func New(opts ...FormOption) (*Form, error) {
	f := &Form{
		surface:       PixelSurface(640, 480),
		frameDuration: time.Second / 60,
		maxRounds:     layout.DefaultMaxRounds,
		queueSize:     256,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if err := f.surface.validate(); err != nil {
		return nil, err
	}

	tree, err := layout.New(f.surface, layout.WithMaxRounds(f.maxRounds))
	if err != nil {
		return nil, err
	}
	f.tree = tree
	f.tree.Resize(f.surface.Width, f.surface.Height)
	f.updates = make(chan func(), f.queueSize)
	return f, nil
}

// Tree returns the constraint tree for declaring constraints directly.
func (f *Form) Tree() *Tree {
	return f.tree
}

// Root returns the control covering the whole surface.
func (f *Form) Root() NodeID {
	return f.tree.Root()
}

// Surface returns the hosting surface.
func (f *Form) Surface() Surface {
	return f.surface
}

// SetSurface replaces the hosting surface and resizes the root to it.
func (f *Form) SetSurface(s Surface) error {
	if err := s.validate(); err != nil {
		return err
	}
	f.surface = s
	f.tree.SetHost(s)
	f.tree.Resize(s.Width, s.Height)
	return nil
}

// Resize changes the surface size and requests a re-layout.
func (f *Form) Resize(width, height int) {
	f.surface.Width, f.surface.Height = width, height
	f.tree.SetHost(f.surface)
	f.tree.Resize(width, height)
}

// Add creates a control under parent.
func (f *Form) Add(parent NodeID, opts ...NodeOption) (NodeID, error) {
	return f.tree.Add(parent, opts...)
}

// AddAt creates a named control under parent and fixes the pinned coordinates.
func (f *Form) AddAt(parent NodeID, name string, pins ...Pin) (NodeID, error) {
	id, err := f.tree.Add(parent, Named(name))
	if err != nil {
		return layout.NoNode, err
	}
	if _, err := f.tree.Place(id, pins...); err != nil {
		return id, fmt.Errorf("placing %q: %w", name, err)
	}
	return id, nil
}

// Remove destroys a control and its subtree, stopping animators whose
// constraint went with it.
func (f *Form) Remove(id NodeID) error {
	if err := f.tree.Remove(id); err != nil {
		return err
	}
	f.animators = slices.DeleteFunc(f.animators, func(a *anim.Animator) bool {
		if f.tree.ConstraintAlive(a.Constraint()) {
			return false
		}
		a.Stop()
		return true
	})
	return nil
}

// Layout runs a layout pass now instead of waiting for the next frame.
func (f *Form) Layout() error {
	return f.tree.Layout()
}

// Rect returns a control's solved geometry relative to its parent.
func (f *Form) Rect(id NodeID) (Rect, bool) {
	return f.tree.Rect(id)
}

// ControlAt returns the control drawn on top at surface point (x, y): the
// deepest match, and the later of overlapping siblings. Controls without
// solved geometry are skipped.
func (f *Form) ControlAt(x, y int) (NodeID, bool) {
	found := layout.NoNode
	root := f.tree.Root()
	f.tree.Walk(root, func(id NodeID) {
		if id == root {
			return
		}
		if r, ok := f.tree.AbsRect(id); ok && r.Contains(x, y) {
			found = id
		}
	})
	return found, found != layout.NoNode
}

// Animate starts moving a Static constraint from one value to another.
// The animator is ticked by Frame until it finishes or is stopped.
func (f *Form) Animate(id ConstraintID, from, to float64, opts ...anim.Option) (*anim.Animator, error) {
	if kind, err := f.tree.Kind(id); err != nil {
		return nil, err
	} else if kind != KindStatic {
		return nil, fmt.Errorf("animating %s constraint: only static constraints can be animated", kind)
	}
	a := anim.New(f.tree, id, from, to, opts...)
	f.animators = append(f.animators, a)
	f.Repaint()
	return a, nil
}

// Animating reports whether any animator is still running.
func (f *Form) Animating() bool {
	return len(f.animators) > 0
}

// Frame advances animators to now, lays out if anything changed, and paints
// when the layout ran or a repaint was requested.
func (f *Form) Frame(now time.Time) error {
	var errs []error
	if len(f.animators) > 0 {
		f.animators = slices.DeleteFunc(f.animators, func(a *anim.Animator) bool {
			finished, err := a.Apply(now)
			if err != nil {
				errs = append(errs, err)
			}
			return finished
		})
		f.Repaint()
	}

	laidOut := false
	if f.tree.NeedsLayout() {
		if err := f.tree.Layout(); err != nil {
			return errors.Join(append(errs, fmt.Errorf("layout: %w", err))...)
		}
		laidOut = true
	}

	if f.checkAndClearRepaint() || laidOut {
		if f.painter != nil {
			if err := f.painter.Paint(f); err != nil {
				errs = append(errs, fmt.Errorf("paint: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Overlay describes every constraint in the form, parents before children.
func (f *Form) Overlay() ([]Description, error) {
	var out []Description
	var err error
	f.tree.Walk(f.tree.Root(), func(id NodeID) {
		for _, cid := range f.tree.Owned(id) {
			if err != nil {
				return
			}
			var d Description
			if d, err = f.tree.Describe(cid); err == nil {
				out = append(out, d)
			}
		}
	})
	return out, err
}
