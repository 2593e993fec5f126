package layout

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/grindlemire/go-forms/internal/debug"
)

// Layout resolves the whole tree. The root's geometry comes from Resize.
func (t *Tree) Layout() error {
	return t.LayoutSubtree(t.root)
}

// LayoutSubtree resolves every control below id. The geometry of id itself
// is kept from the previous pass (or from Resize for the root).
//
// Errors are never transient: they indicate a missing, cyclic or
// contradictory constraint and the same declarations will fail again.
func (t *Tree) LayoutSubtree(id NodeID) error {
	if _, err := t.node(id); err != nil {
		return err
	}
	if id == t.root {
		t.dirty = false
	}
	for round := 0; ; round++ {
		if round == t.maxRounds {
			return fmt.Errorf("%w after %d rounds", ErrNoConvergence, round)
		}
		done, err := t.layoutAttempt(id, round)
		if err != nil {
			return err
		}
		if done {
			if round >= 2 {
				debug.Log("layout: took %d rounds", round+1)
			}
			t.lastRounds = round + 1
			return nil
		}
	}
}

// layoutAttempt runs one round: reset, collect, resolve, refine. It returns
// false when some constraint asked for another round.
func (t *Tree) layoutAttempt(id NodeID, round int) (bool, error) {
	for _, c := range t.nodes[id].children {
		t.resetLayout(c)
	}

	all := t.collect(id, nil)
	slices.SortStableFunc(all, func(a, b ConstraintID) int {
		return cmp.Compare(t.constraints[a].order, t.constraints[b].order)
	})

	order := 0
	pending := slices.Clone(all)
	for len(pending) > 0 {
		var next []ConstraintID
		for _, cid := range pending {
			ok, err := t.apply(cid)
			if err != nil {
				return false, fmt.Errorf("applying %s: %w", t.Summary(cid), err)
			}
			if !ok {
				next = append(next, cid)
				continue
			}
			t.constraints[cid].order = order
			order++
		}
		if len(next) == len(pending) {
			return false, t.unsatisfiable(next)
		}
		pending = next
	}

	done := true
	for _, cid := range all {
		if !t.done(cid, round) {
			t.constraints[cid].order = order
			order++
			done = false
		}
	}
	if !done {
		return false, nil
	}
	return true, t.complete(id)
}

// resetLayout forgets every coordinate below and including id, seeds
// self-constraining controls and gives unconstrained axes their defaults.
// Children are reset before their parent.
func (t *Tree) resetLayout(id NodeID) {
	t.nodes[id].resetSlots()
	for _, c := range t.nodes[id].children {
		t.resetLayout(c)
	}

	n := &t.nodes[id]
	if n.self != nil && n.self.SelfConstrain(Seed{tree: t, node: id}) {
		t.recalculate(id, Horizontal)
		t.recalculate(id, Vertical)
	}
	for _, axis := range Axes {
		if t.nodes[id].refs[axis].len() == 0 {
			t.applyDefaultLayout(id, axis)
		}
	}
}

// applyDefaultLayout fills in Size and Start on axis from the host when
// nothing else provided them. An axis already fixed by two coordinates is
// left to wait for its parent's size.
func (t *Tree) applyDefaultLayout(id NodeID, axis Axis) {
	n := &t.nodes[id]
	if n.determined(axis) {
		return
	}
	size := NewCoord(axis, Size)
	if !n.has(size) {
		n.slots[size.index()] = known(t.host.DefaultSize(axis))
		t.recalculate(id, axis)
	}
	start := NewCoord(axis, Start)
	if !n.has(start) {
		n.slots[start.index()] = known(t.host.DefaultStart(axis))
		t.recalculate(id, axis)
	}
}

// collect gathers the constraints declared anywhere under id in discovery
// order: a control's own constraints before its children's.
func (t *Tree) collect(id NodeID, out []ConstraintID) []ConstraintID {
	out = append(out, t.nodes[id].owned.ids()...)
	for _, c := range t.nodes[id].children {
		out = t.collect(c, out)
	}
	return out
}

// complete checks that id and every descendant has all ten coordinates.
func (t *Tree) complete(id NodeID) error {
	n := &t.nodes[id]
	var missing []Coord
	for _, c := range AllCoords {
		if !n.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &IncompleteError{Node: id, Name: n.name, Missing: missing}
	}
	for _, c := range n.children {
		if err := t.complete(c); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) unsatisfiable(pending []ConstraintID) error {
	err := &UnsatisfiableError{Pending: slices.Clone(pending)}
	for _, cid := range pending {
		err.Details = append(err.Details, t.Summary(cid))
	}
	debug.Log("layout: %v", err)
	return err
}
