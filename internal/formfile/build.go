package formfile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/anim"
	"github.com/grindlemire/go-forms/internal/layout"
)

var (
	ErrDuplicateName  = errors.New("duplicate control name")
	ErrUnknownControl = errors.New("unknown control")
	ErrUnknownKind    = errors.New("unknown control kind")
	ErrBadRef         = errors.New("bad coordinate reference")
	ErrBadConstraint  = errors.New("constraint entry must set exactly one kind")
)

// Built is a document built into a form.
type Built struct {
	// Controls maps control names to their nodes.
	Controls map[string]forms.NodeID
	// Labels maps label names to their labels.
	Labels map[string]*forms.Label
	// Animators are the animations the document started.
	Animators []*anim.Animator
}

type builder struct {
	form  *forms.Form
	tree  *forms.Tree
	built *Built
}

// Build adds the document's controls under the form's root and declares its
// constraints. Controls are created before any constraint, so constraints
// may reference controls declared later in the file.
func Build(doc *Document, f *forms.Form) (*Built, error) {
	b := &builder{
		form: f,
		tree: f.Tree(),
		built: &Built{
			Controls: make(map[string]forms.NodeID),
			Labels:   make(map[string]*forms.Label),
		},
	}
	for _, c := range doc.Controls {
		if err := b.addControl(f.Root(), c); err != nil {
			return nil, err
		}
	}
	for i, c := range doc.Constraints {
		kinds := c.kinds()
		if len(kinds) != 1 {
			return nil, fmt.Errorf("constraint %d: %w, got [%s]", i, ErrBadConstraint, strings.Join(kinds, ", "))
		}
		if err := b.addConstraint(c); err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, kinds[0], err)
		}
	}
	return b.built, nil
}

func (b *builder) addControl(parent forms.NodeID, c Control) error {
	name := c.Name
	if name == "" && c.Kind == KindLabel {
		name = c.Text
	}
	if _, dup := b.built.Controls[name]; dup && name != "" {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	pins, err := placePins(c.Place)
	if err != nil {
		return fmt.Errorf("control %q: %w", name, err)
	}

	var id forms.NodeID
	switch c.Kind {
	case "", KindBox:
		id, err = b.form.AddAt(parent, name, pins...)
	case KindLabel:
		var l *forms.Label
		id, l, err = b.form.AddLabel(parent, c.Text, pins...)
		if l != nil {
			if c.Fit != nil {
				l.SetFit(*c.Fit)
			}
			if name != "" {
				b.built.Labels[name] = l
			}
		}
	case KindCover:
		id, err = b.addSelfConstrained(parent, name, forms.Cover(), pins)
	case KindRow:
		id, err = b.addSelfConstrained(parent, name, forms.Row(), pins)
	default:
		return fmt.Errorf("control %q: %w %q", name, ErrUnknownKind, c.Kind)
	}
	if err != nil {
		return fmt.Errorf("control %q: %w", name, err)
	}
	if name != "" {
		b.built.Controls[name] = id
	}

	for _, child := range c.Children {
		if err := b.addControl(id, child); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) addSelfConstrained(parent forms.NodeID, name string, sc forms.SelfConstrainer, pins []forms.Pin) (forms.NodeID, error) {
	id, err := b.form.Add(parent, forms.Named(name), forms.WithSelfConstrainer(sc))
	if err != nil {
		return layout.NoNode, err
	}
	if _, err := b.tree.Place(id, pins...); err != nil {
		return id, err
	}
	return id, nil
}

// placePins turns a place map into pins in catalog order, so the constraints
// are declared the same way on every run.
func placePins(place map[string]float64) ([]forms.Pin, error) {
	keys := make([]string, 0, len(place))
	for k := range place {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := layout.ParseCoord(k); err != nil {
			return nil, fmt.Errorf("place: %w", err)
		}
	}
	var pins []forms.Pin
	for _, c := range layout.AllCoords {
		if v, ok := place[c.String()]; ok {
			pins = append(pins, forms.At(c, v))
		}
	}
	return pins, nil
}

func (b *builder) addConstraint(c Constraint) error {
	switch {
	case c.Align != nil:
		ra, err := b.ref(c.Align.A)
		if err != nil {
			return err
		}
		rb, err := b.ref(c.Align.B)
		if err != nil {
			return err
		}
		_, err = b.tree.Align(ra.Node, ra.Coord, rb.Node, rb.Coord, c.Align.Offset)
		return err

	case c.Static != nil:
		r, err := b.ref(c.Static.Ref)
		if err != nil {
			return err
		}
		id, err := b.tree.Static(r.Node, r.Coord, c.Static.Value)
		if err != nil {
			return err
		}
		if c.Static.Animate != nil {
			return b.animate(id, c.Static.Value, c.Static.Animate)
		}
		return nil

	case c.Fill != nil:
		nodes := make([]forms.NodeID, len(c.Fill.Refs))
		var coord forms.Coord
		for i, s := range c.Fill.Refs {
			r, err := b.ref(s)
			if err != nil {
				return err
			}
			if i > 0 && r.Coord != coord {
				return fmt.Errorf("%w: fill mixes %s and %s", ErrBadRef, coord, r.Coord)
			}
			nodes[i], coord = r.Node, r.Coord
		}
		var ratios []int
		if len(c.Fill.Ratios) > 0 {
			ratios = c.Fill.Ratios
		}
		_, err := b.tree.Fill(nodes, coord, ratios)
		return err

	case c.Fit != nil:
		n, err := b.control(c.Fit.Control)
		if err != nil {
			return err
		}
		axis, err := layout.ParseAxis(c.Fit.Axis)
		if err != nil {
			return err
		}
		_, err = b.tree.Fit(n, axis, c.Fit.Padding, c.Fit.Min)
		return err

	case c.Center != nil:
		n, err := b.control(c.Center.Control)
		if err != nil {
			return err
		}
		axis, err := layout.ParseAxis(c.Center.Axis)
		if err != nil {
			return err
		}
		if c.Center.Size != nil {
			_, _, err = b.tree.CenterSized(n, axis, *c.Center.Size)
			return err
		}
		_, err = b.tree.Center(n, axis)
		return err

	case c.Size != nil:
		n, err := b.control(c.Size.Control)
		if err != nil {
			return err
		}
		_, _, err = b.tree.SizeTo(n, c.Size.Width, c.Size.Height)
		return err

	case c.FillParent != nil:
		nodes := make([]forms.NodeID, len(c.FillParent.Controls))
		for i, name := range c.FillParent.Controls {
			n, err := b.control(name)
			if err != nil {
				return err
			}
			nodes[i] = n
		}
		axis, err := layout.ParseAxis(c.FillParent.Axis)
		if err != nil {
			return err
		}
		_, err = b.tree.FillParent(nodes, axis, c.FillParent.Spacing)
		return err
	}
	return ErrBadConstraint
}

func (b *builder) animate(id forms.ConstraintID, from float64, a *Animate) error {
	opts := []anim.Option{anim.WithDuration(a.Duration)}
	if a.Easing != "" {
		e, err := anim.Lookup(a.Easing)
		if err != nil {
			return err
		}
		opts = append(opts, anim.WithEasing(e))
	}
	if a.Loop {
		opts = append(opts, anim.Looping())
	}
	animator, err := b.form.Animate(id, from, a.To, opts...)
	if err != nil {
		return err
	}
	b.built.Animators = append(b.built.Animators, animator)
	return nil
}

func (b *builder) control(name string) (forms.NodeID, error) {
	id, ok := b.built.Controls[name]
	if !ok {
		return layout.NoNode, fmt.Errorf("%w %q", ErrUnknownControl, name)
	}
	return id, nil
}

// ref resolves "name.coord". The name may itself contain dots.
func (b *builder) ref(s string) (layout.Ref, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return layout.Ref{}, fmt.Errorf("%w %q: want name.coord", ErrBadRef, s)
	}
	n, err := b.control(s[:i])
	if err != nil {
		return layout.Ref{}, err
	}
	c, err := layout.ParseCoord(s[i+1:])
	if err != nil {
		return layout.Ref{}, fmt.Errorf("%w %q: %w", ErrBadRef, s, err)
	}
	return layout.Ref{Node: n, Coord: c}, nil
}
