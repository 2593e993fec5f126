package layout

import (
	"math"

	"github.com/grindlemire/go-forms/internal/debug"
)

// recalculate derives whatever coordinates on axis follow from the ones
// already known. Only the first matching pair of known coordinates is used.
// When new coordinates resolve, children re-derive too, since their
// parent-dependent coordinates may now be computable.
func (t *Tree) recalculate(id NodeID, axis Axis) {
	n := &t.nodes[id]
	base := int(axis) * kindsPerAxis
	var s [kindsPerAxis]slot
	copy(s[:], n.slots[base:base+kindsPerAxis])

	var p slot
	if n.parent != NoNode {
		p = t.nodes[n.parent].slots[NewCoord(axis, Size).index()]
	}

	before := n.unresolved(axis)
	derive(&s, p)
	copy(n.slots[base:base+kindsPerAxis], s[:])

	if n.unresolved(axis) != before {
		for _, c := range n.children {
			t.recalculate(c, axis)
		}
	}
}

// derive applies the relation table to one axis. p is the parent's Size.
func derive(s *[kindsPerAxis]slot, p slot) {
	start, size, end, sps, eps := &s[Start], &s[Size], &s[End], &s[StartPlusSize], &s[EndPlusSize]

	switch {
	case start.ok && size.ok:
		*sps = known(start.v + size.v)
		if p.ok {
			*end = known(p.v - start.v - size.v)
			*eps = known(end.v + size.v)
		}
	case start.ok && end.ok:
		if p.ok {
			*size = known(p.v - start.v - end.v)
			*sps = known(start.v + size.v)
			*eps = known(end.v + size.v)
		}
	case start.ok && sps.ok:
		*size = known(sps.v - start.v)
		if p.ok {
			*end = known(p.v - sps.v)
			*eps = known(end.v + size.v)
		}
	case start.ok && eps.ok:
		// Not cross-derivable: wait for another constraint or the default layout.
	case size.ok && end.ok:
		if p.ok {
			*start = known(p.v - size.v - end.v)
			*sps = known(start.v + size.v)
		}
		*eps = known(end.v + size.v)
	case size.ok && sps.ok:
		*start = known(sps.v - size.v)
		if p.ok {
			*end = known(p.v - sps.v)
			*eps = known(end.v + size.v)
		}
	case size.ok && eps.ok:
		*end = known(eps.v - size.v)
		if p.ok {
			*start = known(p.v - eps.v)
			*sps = known(start.v + size.v)
		}
	case end.ok && sps.ok:
		// Not cross-derivable without Start.
	case end.ok && eps.ok:
		*size = known(eps.v - end.v)
		if p.ok {
			*start = known(p.v - eps.v)
			*sps = known(start.v + size.v)
		}
	case sps.ok && eps.ok:
		if p.ok {
			*size = known(-(p.v - sps.v - eps.v))
			*start = known(sps.v - size.v)
			*end = known(eps.v - size.v)
		}
	}
}

// floorValue truncates v to an integer. Values within 0.001 of an integer
// are accepted silently; anything else is logged.
func floorValue(v float64, what string) int {
	f := math.Floor(v)
	if v-f > 0.001 {
		debug.Log("layout: non-integer %s: %g", what, v)
	}
	return int(f)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
