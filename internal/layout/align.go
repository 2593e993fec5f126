package layout

import "fmt"

type alignBody struct {
	offset int
}

func (*alignBody) kind() ConstraintKind { return KindAlign }

// Align declares a.ca = b.cb + offset. Whichever side resolves first
// determines the other.
func (t *Tree) Align(a NodeID, ca Coord, b NodeID, cb Coord, offset int) (ConstraintID, error) {
	return t.declare([]Ref{{a, ca}, {b, cb}}, &alignBody{offset: offset})
}

func (t *Tree) applyAlign(c *constraint, b *alignBody) (bool, error) {
	first, second := c.refs[0], c.refs[1]
	v1, ok1 := t.nodes[first.Node].get(first.Coord)
	v2, ok2 := t.nodes[second.Node].get(second.Coord)
	switch {
	case ok1 && ok2:
		return false, fmt.Errorf("%w: %s.%s and %s.%s", ErrAlreadySpecified,
			t.label(first.Node), first.Coord, t.label(second.Node), second.Coord)
	case ok1:
		if err := t.setCoord(second.Node, second.Coord, v1-b.offset); err != nil {
			return false, err
		}
	case ok2:
		if err := t.setCoord(first.Node, first.Coord, v2+b.offset); err != nil {
			return false, err
		}
	default:
		return false, nil
	}
	t.notifyApplied(c)
	return true, nil
}
