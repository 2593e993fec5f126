package layout

type centerBody struct{}

func (*centerBody) kind() ConstraintKind { return KindCenter }

// Center places n in the middle of its parent on axis. It needs both the
// parent's and the control's Size.
func (t *Tree) Center(n NodeID, axis Axis) (ConstraintID, error) {
	return t.declare([]Ref{{n, NewCoord(axis, Start)}}, &centerBody{})
}

func (t *Tree) applyCenter(c *constraint, _ *centerBody) (bool, error) {
	r := c.refs[0]
	size := NewCoord(r.Coord.Axis, Size)
	p, ok := t.nodes[c.parent].get(size)
	if !ok {
		return false, nil
	}
	s, ok := t.nodes[r.Node].get(size)
	if !ok {
		return false, nil
	}
	if err := t.setCoord(r.Node, r.Coord, floorDiv(p-s, 2)); err != nil {
		return false, err
	}
	t.notifyApplied(c)
	return true, nil
}
