package layout

import (
	"fmt"
	"slices"
	"strings"
)

// ConstraintID is a stable handle to a constraint in a Tree. Handles are never reused.
type ConstraintID int32

// NoConstraint is the zero handle.
const NoConstraint ConstraintID = -1

// ConstraintKind identifies a constraint variant.
type ConstraintKind uint8

const (
	KindAlign ConstraintKind = iota
	KindStatic
	KindFill
	KindContent
	KindCenter
)

func (k ConstraintKind) String() string {
	switch k {
	case KindAlign:
		return "align"
	case KindStatic:
		return "static"
	case KindFill:
		return "fill"
	case KindContent:
		return "fit"
	case KindCenter:
		return "center"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", uint8(k))
	}
}

// Ref is one (control, coordinate) pair governed by a constraint.
type Ref struct {
	Node  NodeID
	Coord Coord
}

// constraint is the common record. body holds the variant parameters and is
// one of *alignBody, *staticBody, *fillBody, *contentBody, *centerBody.
type constraint struct {
	live   bool
	parent NodeID
	refs   []Ref
	order  int
	body   variant
}

// variant is the closed set of constraint bodies.
type variant interface {
	kind() ConstraintKind
}

// declare validates refs, then registers a new constraint on every
// referenced control and on their common parent.
func (t *Tree) declare(refs []Ref, body variant) (ConstraintID, error) {
	if len(refs) == 0 {
		return NoConstraint, fmt.Errorf("%w: no controls", ErrMismatched)
	}
	for _, r := range refs {
		if _, err := t.node(r.Node); err != nil {
			return NoConstraint, err
		}
		if !r.Coord.Valid() {
			return NoConstraint, fmt.Errorf("%w: %v", ErrInvalidCoord, r.Coord)
		}
	}
	parent := t.nodes[refs[0].Node].parent
	for _, r := range refs {
		p := t.nodes[r.Node].parent
		if p == NoNode {
			return NoConstraint, fmt.Errorf("%w: %s", ErrNotAttached, t.label(r.Node))
		}
		if p != parent {
			return NoConstraint, fmt.Errorf("%w: %s is under %s, not %s",
				ErrParentMismatch, t.label(r.Node), t.label(p), t.label(parent))
		}
	}

	t.constraints = append(t.constraints, constraint{
		live:   true,
		parent: parent,
		refs:   slices.Clone(refs),
		body:   body,
	})
	id := ConstraintID(len(t.constraints) - 1)
	for _, r := range refs {
		t.nodes[r.Node].refs[r.Coord.Axis].add(id)
	}
	t.nodes[parent].owned.add(id)
	t.MarkDirty()
	return id, nil
}

// RemoveConstraint detaches a constraint from every control it references
// and from its parent, then requests a re-layout.
func (t *Tree) RemoveConstraint(id ConstraintID) error {
	c, err := t.constraint(id)
	if err != nil {
		return err
	}
	for _, r := range c.refs {
		t.nodes[r.Node].refs[r.Coord.Axis].remove(id)
	}
	t.nodes[c.parent].owned.removeAll(id)
	c.live = false
	c.refs = nil
	t.MarkDirty()
	return nil
}

// dropControl severs one control from a constraint because the control is
// being removed. Fill shrinks its membership; everything else goes away.
func (t *Tree) dropControl(id ConstraintID, n NodeID) error {
	c, err := t.constraint(id)
	if err != nil {
		return err
	}
	fill, ok := c.body.(*fillBody)
	if !ok {
		return t.RemoveConstraint(id)
	}
	for i := len(c.refs) - 1; i >= 0; i-- {
		if c.refs[i].Node != n {
			continue
		}
		t.nodes[n].refs[c.refs[i].Coord.Axis].remove(id)
		c.refs = slices.Delete(c.refs, i, i+1)
		fill.ratios = slices.Delete(fill.ratios, i, i+1)
	}
	if len(c.refs) < 2 {
		return t.RemoveConstraint(id)
	}
	t.MarkDirty()
	return nil
}

// Kind returns a constraint's variant.
func (t *Tree) Kind(id ConstraintID) (ConstraintKind, error) {
	c, err := t.constraint(id)
	if err != nil {
		return 0, err
	}
	return c.body.kind(), nil
}

// Refs returns the (control, coordinate) pairs a constraint governs.
func (t *Tree) Refs(id ConstraintID) []Ref {
	c, err := t.constraint(id)
	if err != nil {
		return nil
	}
	return slices.Clone(c.refs)
}

// Order returns the persisted priority hint of a constraint.
func (t *Tree) Order(id ConstraintID) int {
	c, err := t.constraint(id)
	if err != nil {
		return 0
	}
	return c.order
}

// ConstraintAlive reports whether id refers to a constraint that has not been removed.
func (t *Tree) ConstraintAlive(id ConstraintID) bool {
	return id >= 0 && int(id) < len(t.constraints) && t.constraints[id].live
}

func (t *Tree) constraint(id ConstraintID) (*constraint, error) {
	if !t.ConstraintAlive(id) {
		return nil, fmt.Errorf("%w: #%d", ErrUnknownConstraint, id)
	}
	return &t.constraints[id], nil
}

// setCoord writes a coordinate through the constraint layer and derives
// what follows from it. A slot may be written once per pass.
func (t *Tree) setCoord(id NodeID, c Coord, v int) error {
	n := &t.nodes[id]
	if n.has(c) {
		old, _ := n.get(c)
		return fmt.Errorf("%w: %s of %s (have %d, setting %d)", ErrOverspecified, c, t.label(id), old, v)
	}
	n.slots[c.index()] = known(v)
	t.recalculate(id, c.Axis)
	return nil
}

// notifyApplied counts one more applied constraint against every control it
// references. A control with nothing outstanding on an axis falls back to
// the default layout for whatever is still missing.
func (t *Tree) notifyApplied(c *constraint) {
	for _, r := range c.refs {
		n := &t.nodes[r.Node]
		n.applied[r.Coord.Axis]++
		if n.outstanding(r.Coord.Axis) == 0 {
			t.applyDefaultLayout(r.Node, r.Coord.Axis)
		}
	}
}

// apply dispatches to the variant. It reports whether the constraint could
// be applied with what is currently known.
func (t *Tree) apply(id ConstraintID) (bool, error) {
	c := &t.constraints[id]
	switch b := c.body.(type) {
	case *alignBody:
		return t.applyAlign(c, b)
	case *staticBody:
		return t.applyStatic(c, b)
	case *fillBody:
		return t.applyFill(c, b)
	case *contentBody:
		return t.applyContent(c, b)
	case *centerBody:
		return t.applyCenter(c, b)
	default:
		return false, fmt.Errorf("%w: %T", ErrWrongKind, b)
	}
}

// done reports whether a constraint's last application is final.
// Only Fill asks for further rounds.
func (t *Tree) done(id ConstraintID, round int) bool {
	c := &t.constraints[id]
	if b, ok := c.body.(*fillBody); ok {
		return t.doneFill(c, b, round)
	}
	return true
}

// Summary describes a constraint in one line, e.g. `align "a".x = "b".xw +4`.
func (t *Tree) Summary(id ConstraintID) string {
	c, err := t.constraint(id)
	if err != nil {
		return err.Error()
	}
	ref := func(r Ref) string { return t.label(r.Node) + "." + r.Coord.String() }
	switch b := c.body.(type) {
	case *alignBody:
		return fmt.Sprintf("align %s = %s %+d", ref(c.refs[0]), ref(c.refs[1]), b.offset)
	case *staticBody:
		return fmt.Sprintf("static %s = %d", ref(c.refs[0]), b.v)
	case *fillBody:
		parts := make([]string, len(c.refs))
		for i, r := range c.refs {
			parts[i] = fmt.Sprintf("%s:%d", ref(r), b.ratios[i])
		}
		return fmt.Sprintf("fill [%s] total %d", strings.Join(parts, " "), b.total)
	case *contentBody:
		return fmt.Sprintf("fit %s padding %d min %d", ref(c.refs[0]), b.padding, b.min)
	case *centerBody:
		return fmt.Sprintf("center %s", ref(c.refs[0]))
	}
	return "?"
}
