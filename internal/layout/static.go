package layout

type staticBody struct {
	v int
}

func (*staticBody) kind() ConstraintKind { return KindStatic }

// Static fixes one coordinate of a control to v. Fractional values are floored.
func (t *Tree) Static(n NodeID, c Coord, v float64) (ConstraintID, error) {
	return t.declare([]Ref{{n, c}}, &staticBody{v: floorValue(v, "value for new static constraint")})
}

func (t *Tree) applyStatic(c *constraint, b *staticBody) (bool, error) {
	r := c.refs[0]
	if r.Coord.ParentDependent() && !t.nodes[c.parent].has(NewCoord(r.Coord.Axis, Size)) {
		return false, nil
	}
	if err := t.setCoord(r.Node, r.Coord, b.v); err != nil {
		return false, err
	}
	t.notifyApplied(c)
	return true, nil
}
