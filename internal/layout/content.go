package layout

type contentBody struct {
	padding int
	min     int
}

func (*contentBody) kind() ConstraintKind { return KindContent }

// Fit sizes n on axis to the far edge of its furthest child plus padding,
// never below minimum.
func (t *Tree) Fit(n NodeID, axis Axis, padding, minimum int) (ConstraintID, error) {
	return t.declare([]Ref{{n, NewCoord(axis, Size)}}, &contentBody{padding: padding, min: minimum})
}

// Fit does not count towards the control's applied constraints, so a fitted
// container never takes the default layout on that axis.
func (t *Tree) applyContent(c *constraint, b *contentBody) (bool, error) {
	r := c.refs[0]
	edge := NewCoord(r.Coord.Axis, StartPlusSize)
	v := 0
	for _, child := range t.nodes[r.Node].children {
		cv, ok := t.nodes[child].get(edge)
		if !ok {
			return false, nil
		}
		v = max(v, cv)
	}
	if err := t.setCoord(r.Node, r.Coord, max(b.min, v+b.padding)); err != nil {
		return false, err
	}
	return true, nil
}
