package layout

import (
	"fmt"
	"slices"
)

func (t *Tree) body(id ConstraintID, want ConstraintKind) (variant, error) {
	c, err := t.constraint(id)
	if err != nil {
		return nil, err
	}
	if c.body.kind() != want {
		return nil, fmt.Errorf("%w: #%d is %s, not %s", ErrWrongKind, id, c.body.kind(), want)
	}
	return c.body, nil
}

// StaticValue returns the literal value of a Static constraint.
func (t *Tree) StaticValue(id ConstraintID) (int, error) {
	b, err := t.body(id, KindStatic)
	if err != nil {
		return 0, err
	}
	return b.(*staticBody).v, nil
}

// SetStatic changes a Static constraint's value. A re-layout is requested
// only when the floored value actually changes.
func (t *Tree) SetStatic(id ConstraintID, v float64) error {
	b, err := t.body(id, KindStatic)
	if err != nil {
		return err
	}
	s := b.(*staticBody)
	nv := floorValue(v, "value for updating static constraint")
	if s.v != nv {
		s.v = nv
		t.MarkDirty()
	}
	return nil
}

// AddStatic increments a Static constraint's value and always requests a re-layout.
func (t *Tree) AddStatic(id ConstraintID, dv float64) error {
	b, err := t.body(id, KindStatic)
	if err != nil {
		return err
	}
	b.(*staticBody).v += floorValue(dv, "value added to static constraint")
	t.MarkDirty()
	return nil
}

// Offset returns the offset of an Align constraint.
func (t *Tree) Offset(id ConstraintID) (int, error) {
	b, err := t.body(id, KindAlign)
	if err != nil {
		return 0, err
	}
	return b.(*alignBody).offset, nil
}

// SetOffset changes an Align constraint's offset.
func (t *Tree) SetOffset(id ConstraintID, offset int) error {
	b, err := t.body(id, KindAlign)
	if err != nil {
		return err
	}
	a := b.(*alignBody)
	if a.offset != offset {
		a.offset = offset
		t.MarkDirty()
	}
	return nil
}

// SetPadding changes the padding of a Fit constraint.
func (t *Tree) SetPadding(id ConstraintID, padding int) error {
	b, err := t.body(id, KindContent)
	if err != nil {
		return err
	}
	b.(*contentBody).padding = padding
	t.MarkDirty()
	return nil
}

// SetMinimum changes the minimum of a Fit constraint.
func (t *Tree) SetMinimum(id ConstraintID, minimum int) error {
	b, err := t.body(id, KindContent)
	if err != nil {
		return err
	}
	b.(*contentBody).min = minimum
	t.MarkDirty()
	return nil
}

// SetRatios replaces a Fill constraint's ratios. The running total is kept.
func (t *Tree) SetRatios(id ConstraintID, ratios []int) error {
	b, err := t.body(id, KindFill)
	if err != nil {
		return err
	}
	f := b.(*fillBody)
	if err := validRatios(ratios, len(f.ratios)); err != nil {
		return err
	}
	f.ratios = slices.Clone(ratios)
	t.MarkDirty()
	return nil
}

// FillTotal returns the running total a Fill constraint distributes.
func (t *Tree) FillTotal(id ConstraintID) (int, error) {
	b, err := t.body(id, KindFill)
	if err != nil {
		return 0, err
	}
	return b.(*fillBody).total, nil
}
