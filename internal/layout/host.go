package layout

// Host is the hosting surface. It supplies the geometry given to a control
// that ends up with no governing constraints on an axis.
type Host interface {
	// DefaultSize returns the fallback Size on axis.
	DefaultSize(axis Axis) int

	// DefaultStart returns the fallback Start on axis.
	DefaultStart(axis Axis) int
}

// FixedHost is a Host with constant defaults.
type FixedHost struct {
	Width, Height int
	StartX        int
	StartY        int
}

// DefaultHost returns the defaults used when no surface is configured:
// 160x32 controls placed 10 units from the parent's near edges.
func DefaultHost() FixedHost {
	return FixedHost{Width: 160, Height: 32, StartX: 10, StartY: 10}
}

func (h FixedHost) DefaultSize(axis Axis) int {
	if axis == Vertical {
		return h.Height
	}
	return h.Width
}

func (h FixedHost) DefaultStart(axis Axis) int {
	if axis == Vertical {
		return h.StartY
	}
	return h.StartX
}

// SelfConstrainer is implemented by controls that compute part of their own
// geometry (text metrics, covering the parent) before constraints run.
// Return false to leave the control to constraints and defaults.
type SelfConstrainer interface {
	SelfConstrain(s Seed) bool
}

// SelfConstrainFunc adapts a function to SelfConstrainer.
type SelfConstrainFunc func(s Seed) bool

func (f SelfConstrainFunc) SelfConstrain(s Seed) bool {
	return f(s)
}

// Seed gives a SelfConstrainer write access to its own freshly reset slots.
type Seed struct {
	tree *Tree
	node NodeID
}

// Node returns the control being seeded.
func (s Seed) Node() NodeID {
	return s.node
}

// Host returns the tree's hosting surface.
func (s Seed) Host() Host {
	return s.tree.host
}

// Set assigns coordinate c. Seeds run right after a reset, so the slot is
// always empty; derivation happens once the hook returns.
func (s Seed) Set(c Coord, v int) {
	if !c.Valid() {
		return
	}
	s.tree.nodes[s.node].slots[c.index()] = known(v)
}
