package layout

import (
	"fmt"
	"math"
	"slices"
)

type fillBody struct {
	ratios []int
	total  int

	// Parent Size when total was last adjusted.
	lastParent slot
}

func (*fillBody) kind() ConstraintKind { return KindFill }

// Fill shares a Size coordinate between two or more siblings by ratio.
// A nil ratios slice weighs every control equally.
//
// Every control but the first receives its share of a running total; the
// first is left to whatever else constrains the group, and the total is
// refined over extra rounds until the shares agree.
func (t *Tree) Fill(nodes []NodeID, c Coord, ratios []int) (ConstraintID, error) {
	if c.Kind != Size {
		return NoConstraint, fmt.Errorf("%w: can only fill width or height, not %s", ErrInvalidFill, c)
	}
	if len(nodes) < 2 {
		return NoConstraint, fmt.Errorf("%w: need at least two controls, got %d", ErrInvalidFill, len(nodes))
	}
	for i, n := range nodes {
		if slices.Index(nodes[:i], n) >= 0 {
			return NoConstraint, fmt.Errorf("%w: %s listed twice", ErrInvalidFill, t.label(n))
		}
	}
	if ratios == nil {
		ratios = make([]int, len(nodes))
		for i := range ratios {
			ratios[i] = 1
		}
	}
	if err := validRatios(ratios, len(nodes)); err != nil {
		return NoConstraint, err
	}
	refs := make([]Ref, len(nodes))
	for i, n := range nodes {
		refs[i] = Ref{n, c}
	}
	return t.declare(refs, &fillBody{
		ratios: slices.Clone(ratios),
		total:  100 * len(nodes),
	})
}

func validRatios(ratios []int, n int) error {
	if len(ratios) != n {
		return fmt.Errorf("%w: %d ratios for %d controls", ErrInvalidFill, len(ratios), n)
	}
	for _, r := range ratios {
		if r <= 0 {
			return fmt.Errorf("%w: ratio %d must be positive", ErrInvalidFill, r)
		}
	}
	return nil
}

// Fill does not count towards its controls' applied constraints: the first
// control's Size is settled by other constraints, never by the default layout.
func (t *Tree) applyFill(c *constraint, b *fillBody) (bool, error) {
	coord := c.refs[0].Coord
	if p, ok := t.nodes[c.parent].get(NewCoord(coord.Axis, Size)); ok && b.lastParent.ok && p != b.lastParent.v {
		if b.lastParent.v != 0 {
			b.total = int(math.Round(float64(b.total) * float64(p) / float64(b.lastParent.v)))
		}
		b.lastParent = known(p)
	}

	for _, r := range c.refs {
		if t.nodes[r.Node].has(coord) {
			return false, fmt.Errorf("%w: %s already has %s for fill", ErrOverspecified, t.label(r.Node), coord)
		}
	}

	shares, rem := b.shares()
	for i := 1; i < len(c.refs); i++ {
		v := shares[i]
		if rem > 0 {
			v++
			rem--
		}
		if err := t.setCoord(c.refs[i].Node, coord, v); err != nil {
			return false, err
		}
	}
	return true, nil
}

// shares splits total by ratio, rounding down. rem is what rounding left over;
// it goes one unit at a time to the earliest controls after the first.
func (b *fillBody) shares() (shares []int, rem int) {
	sum := 0
	for _, r := range b.ratios {
		sum += r
	}
	shares = make([]int, len(b.ratios))
	rem = b.total
	for i, r := range b.ratios {
		shares[i] = floorDiv(b.total*r, sum)
		rem -= shares[i]
	}
	return shares, rem
}

// doneFill measures how far the controls stray from the first control's
// per-ratio value. Within one unit per control the fill is settled;
// otherwise the total moves toward what was observed and another round runs.
func (t *Tree) doneFill(c *constraint, b *fillBody, round int) bool {
	coord := c.refs[0].Coord
	v0, ok := t.nodes[c.refs[0].Node].get(coord)
	if !ok {
		return true
	}
	observed := v0
	spread := 0
	for i := 1; i < len(c.refs); i++ {
		v, _ := t.nodes[c.refs[i].Node].get(coord)
		want := floorDiv(v0*b.ratios[i], b.ratios[0])
		spread += abs(want - v)
		observed += v
	}
	if spread <= len(c.refs) {
		return true
	}
	if round >= 1 {
		observed = int(math.Round(float64(observed+b.total) / 2))
	}
	b.total = observed
	b.lastParent = t.nodes[c.parent].slots[NewCoord(coord.Axis, Size).index()]
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
