package layout

// NodeID is a stable handle to a control in a Tree. Handles are never reused.
type NodeID int32

// NoNode is the parent of the root and of detached controls.
const NoNode NodeID = -1

// slot is an optional integer coordinate value.
type slot struct {
	v  int
	ok bool
}

func known(v int) slot {
	return slot{v: v, ok: true}
}

// node is one control in the arena.
type node struct {
	live     bool
	name     string
	parent   NodeID
	children []NodeID

	// Constraints whose controls are this node's children.
	owned refSet

	// Constraints that reference this node, per axis.
	refs [2]refSet

	// Referencing constraints already applied in the current pass, per axis.
	applied [2]int

	slots [2 * kindsPerAxis]slot
	self  SelfConstrainer
}

func (n *node) get(c Coord) (int, bool) {
	s := n.slots[c.index()]
	return s.v, s.ok
}

func (n *node) has(c Coord) bool {
	return n.slots[c.index()].ok
}

// unresolved counts unknown coordinates on axis.
func (n *node) unresolved(axis Axis) int {
	count := 0
	base := int(axis) * kindsPerAxis
	for i := base; i < base+kindsPerAxis; i++ {
		if !n.slots[i].ok {
			count++
		}
	}
	return count
}

// determined reports whether the known coordinates on axis already fix the
// axis once the parent's size is known. Start with EndPlusSize and End with
// StartPlusSize are the only pairs that do not.
func (n *node) determined(axis Axis) bool {
	base := int(axis) * kindsPerAxis
	var known []CoordKind
	for k := CoordKind(0); k < kindsPerAxis; k++ {
		if n.slots[base+int(k)].ok {
			known = append(known, k)
		}
	}
	switch len(known) {
	case 0, 1:
		return false
	case 2:
		pair := [2]CoordKind{known[0], known[1]}
		return pair != [2]CoordKind{Start, EndPlusSize} && pair != [2]CoordKind{End, StartPlusSize}
	}
	return true
}

func (n *node) resetSlots() {
	n.slots = [2 * kindsPerAxis]slot{}
	n.applied = [2]int{}
}

// outstanding counts referencing constraints not yet applied on axis.
func (n *node) outstanding(axis Axis) int {
	return n.refs[axis].len() - n.applied[axis]
}
