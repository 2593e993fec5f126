package layout

import "fmt"

// Pin fixes one coordinate to a literal value.
type Pin struct {
	Coord Coord
	Value float64
}

// Place declares a Static constraint per pin, in order.
func (t *Tree) Place(n NodeID, pins ...Pin) ([]ConstraintID, error) {
	ids := make([]ConstraintID, 0, len(pins))
	for _, p := range pins {
		id, err := t.Static(n, p.Coord, p.Value)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SizeTo fixes a control's width and height.
func (t *Tree) SizeTo(n NodeID, width, height float64) (w, h ConstraintID, err error) {
	if w, err = t.Static(n, W, width); err != nil {
		return NoConstraint, NoConstraint, err
	}
	if h, err = t.Static(n, H, height); err != nil {
		return w, NoConstraint, err
	}
	return w, h, nil
}

// CenterSized fixes a control's size on axis and centers it in its parent.
func (t *Tree) CenterSized(n NodeID, axis Axis, size float64) (sizeID, centerID ConstraintID, err error) {
	if sizeID, err = t.Static(n, NewCoord(axis, Size), size); err != nil {
		return NoConstraint, NoConstraint, err
	}
	if centerID, err = t.Center(n, axis); err != nil {
		return sizeID, NoConstraint, err
	}
	return sizeID, centerID, nil
}

// FillGroup holds the constraints declared by FillParent.
type FillGroup struct {
	Start ConstraintID
	Chain []ConstraintID
	End   ConstraintID
	Fill  ConstraintID
}

// FillParent lays nodes out edge to edge across their parent on axis, with
// spacing before, between and after them, sharing the space equally.
func (t *Tree) FillParent(nodes []NodeID, axis Axis, spacing int) (FillGroup, error) {
	g := FillGroup{Start: NoConstraint, End: NoConstraint, Fill: NoConstraint}
	if len(nodes) < 2 {
		return g, fmt.Errorf("%w: need at least two controls, got %d", ErrInvalidFill, len(nodes))
	}
	start := NewCoord(axis, Start)
	var err error
	if g.Start, err = t.Static(nodes[0], start, float64(spacing)); err != nil {
		return g, err
	}
	for i := 1; i < len(nodes); i++ {
		id, err := t.Align(nodes[i], start, nodes[i-1], NewCoord(axis, StartPlusSize), spacing)
		if err != nil {
			return g, err
		}
		g.Chain = append(g.Chain, id)
	}
	if g.End, err = t.Static(nodes[len(nodes)-1], NewCoord(axis, End), float64(spacing)); err != nil {
		return g, err
	}
	if g.Fill, err = t.Fill(nodes, NewCoord(axis, Size), nil); err != nil {
		return g, err
	}
	return g, nil
}
