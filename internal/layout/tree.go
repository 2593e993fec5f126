package layout

import (
	"fmt"
	"slices"
)

// DefaultMaxRounds bounds the refinement rounds of one layout pass.
const DefaultMaxRounds = 20

// Tree is an arena of controls and the constraints declared between them.
//
// A Tree is not safe for concurrent use. All mutation, including layout,
// must happen on the goroutine that owns the surface's frame tick.
type Tree struct {
	nodes       []node
	constraints []constraint
	root        NodeID
	host        Host

	maxRounds  int
	lastRounds int
	dirty      bool
}

// Option configures a Tree.
type Option func(*Tree) error

// WithMaxRounds sets the refinement round bound. Must be at least 1.
func WithMaxRounds(n int) Option {
	return func(t *Tree) error {
		if n < 1 {
			return fmt.Errorf("max rounds must be at least 1, got %d", n)
		}
		t.maxRounds = n
		return nil
	}
}

// New creates a Tree with a single root control. A nil host uses DefaultHost.
func New(host Host, opts ...Option) (*Tree, error) {
	if host == nil {
		host = DefaultHost()
	}
	t := &Tree{
		host:      host,
		maxRounds: DefaultMaxRounds,
		dirty:     true,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.root = t.NewNode(Named("root"))
	return t, nil
}

// NodeOption configures a control when it is created.
type NodeOption func(*node)

// Named sets a diagnostic name used in errors and overlays.
func Named(name string) NodeOption {
	return func(n *node) {
		n.name = name
	}
}

// WithSelfConstrainer installs the self-constraining hook.
func WithSelfConstrainer(sc SelfConstrainer) NodeOption {
	return func(n *node) {
		n.self = sc
	}
}

// Root returns the root control.
func (t *Tree) Root() NodeID {
	return t.root
}

// Host returns the hosting surface.
func (t *Tree) Host() Host {
	return t.host
}

// SetHost replaces the hosting surface and requests a re-layout.
func (t *Tree) SetHost(h Host) {
	if h == nil {
		h = DefaultHost()
	}
	t.host = h
	t.MarkDirty()
}

// NewNode creates a detached control.
func (t *Tree) NewNode(opts ...NodeOption) NodeID {
	n := node{live: true, parent: NoNode}
	for _, opt := range opts {
		opt(&n)
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Add creates a control and attaches it under parent.
func (t *Tree) Add(parent NodeID, opts ...NodeOption) (NodeID, error) {
	if _, err := t.node(parent); err != nil {
		return NoNode, err
	}
	id := t.NewNode(opts...)
	if err := t.Attach(parent, id); err != nil {
		return NoNode, err
	}
	return id, nil
}

// Attach makes child the last child of parent.
func (t *Tree) Attach(parent, child NodeID) error {
	p, err := t.node(parent)
	if err != nil {
		return err
	}
	c, err := t.node(child)
	if err != nil {
		return err
	}
	if c.parent != NoNode || child == t.root {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, t.label(child))
	}
	for a := parent; a != NoNode; a = t.nodes[a].parent {
		if a == child {
			return fmt.Errorf("attaching %s under its own descendant %s", t.label(child), t.label(parent))
		}
	}
	c.parent = parent
	p.children = append(p.children, child)
	t.MarkDirty()
	return nil
}

// Remove destroys a control and its subtree. Every constraint referencing a
// removed control is severed first: Fill constraints drop the member, all
// others are removed outright.
func (t *Tree) Remove(id NodeID) error {
	if _, err := t.node(id); err != nil {
		return err
	}
	if id == t.root {
		return ErrRootRemoval
	}
	for len(t.nodes[id].children) > 0 {
		if err := t.Remove(t.nodes[id].children[0]); err != nil {
			return err
		}
	}
	if t.nodes[id].owned.len() > 0 {
		return fmt.Errorf("%w: %s owns %d", ErrOrphanConstraints, t.label(id), t.nodes[id].owned.len())
	}
	for _, axis := range Axes {
		for _, cid := range t.nodes[id].refs[axis].ids() {
			if err := t.dropControl(cid, id); err != nil {
				return err
			}
		}
	}
	return t.detach(id)
}

// detach unlinks a control from its parent. It refuses while any constraint
// still references the control.
func (t *Tree) detach(id NodeID) error {
	n := &t.nodes[id]
	if n.refs[Horizontal].len() > 0 || n.refs[Vertical].len() > 0 {
		return fmt.Errorf("%w: %s (%d horizontal, %d vertical)", ErrStillReferenced, t.label(id),
			n.refs[Horizontal].len(), n.refs[Vertical].len())
	}
	if n.parent != NoNode {
		p := &t.nodes[n.parent]
		if i := slices.Index(p.children, id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	n.parent = NoNode
	n.live = false
	n.self = nil
	t.MarkDirty()
	return nil
}

// SetSelfConstrainer installs or clears a control's self-constraining hook.
func (t *Tree) SetSelfConstrainer(id NodeID, sc SelfConstrainer) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}
	n.self = sc
	t.MarkDirty()
	return nil
}

// Parent returns a control's parent, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.alive(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children returns a copy of a control's children in composition order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.alive(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

// Name returns the diagnostic name of a control.
func (t *Tree) Name(id NodeID) string {
	if !t.alive(id) {
		return ""
	}
	return t.nodes[id].name
}

// Alive reports whether id refers to a control that has not been removed.
func (t *Tree) Alive(id NodeID) bool {
	return t.alive(id)
}

// Walk visits id and its descendants depth-first, parents before children.
func (t *Tree) Walk(id NodeID, fn func(NodeID)) {
	if !t.alive(id) {
		return
	}
	fn(id)
	for _, c := range t.nodes[id].children {
		t.Walk(c, fn)
	}
}

// References returns the constraints referencing a control on axis.
func (t *Tree) References(id NodeID, axis Axis) []ConstraintID {
	if !t.alive(id) {
		return nil
	}
	return t.nodes[id].refs[axis].ids()
}

// Owned returns the constraints declared between a control's children.
func (t *Tree) Owned(id NodeID) []ConstraintID {
	if !t.alive(id) {
		return nil
	}
	return t.nodes[id].owned.ids()
}

// Coord returns a resolved coordinate. ok is false while it is unknown.
func (t *Tree) Coord(id NodeID, c Coord) (v int, ok bool) {
	if !t.alive(id) || !c.Valid() {
		return 0, false
	}
	return t.nodes[id].get(c)
}

// Rect returns a control's geometry relative to its parent.
// ok is false unless Start and Size are known on both axes.
func (t *Tree) Rect(id NodeID) (Rect, bool) {
	if !t.alive(id) {
		return Rect{}, false
	}
	n := &t.nodes[id]
	x, okX := n.get(X)
	y, okY := n.get(Y)
	w, okW := n.get(W)
	h, okH := n.get(H)
	return NewRect(x, y, w, h), okX && okY && okW && okH
}

// AbsRect returns a control's geometry relative to the root.
func (t *Tree) AbsRect(id NodeID) (Rect, bool) {
	r, ok := t.Rect(id)
	if !ok {
		return Rect{}, false
	}
	for p := t.nodes[id].parent; p != NoNode && p != t.root; p = t.nodes[p].parent {
		pr, ok := t.Rect(p)
		if !ok {
			return Rect{}, false
		}
		r = r.Translate(pr.X, pr.Y)
	}
	return r, true
}

// Resize seeds the root's geometry from the hosting surface and requests a
// re-layout.
func (t *Tree) Resize(width, height int) {
	r := &t.nodes[t.root]
	r.slots[X.index()] = known(0)
	r.slots[Y.index()] = known(0)
	r.slots[W.index()] = known(width)
	r.slots[H.index()] = known(height)
	r.slots[X2.index()] = known(0)
	r.slots[Y2.index()] = known(0)
	r.slots[XW.index()] = known(width)
	r.slots[YH.index()] = known(height)
	r.slots[X2W.index()] = known(width)
	r.slots[Y2H.index()] = known(height)
	t.MarkDirty()
}

// MarkDirty requests a layout pass. Requests coalesce until the next pass.
func (t *Tree) MarkDirty() {
	t.dirty = true
}

// NeedsLayout reports whether a layout pass has been requested.
func (t *Tree) NeedsLayout() bool {
	return t.dirty
}

// Rounds returns the number of rounds the last successful pass needed.
func (t *Tree) Rounds() int {
	return t.lastRounds
}

func (t *Tree) alive(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

func (t *Tree) node(id NodeID) (*node, error) {
	if !t.alive(id) {
		return nil, fmt.Errorf("%w: #%d", ErrUnknownNode, id)
	}
	return &t.nodes[id], nil
}

// label names a control for diagnostics.
func (t *Tree) label(id NodeID) string {
	if t.alive(id) && t.nodes[id].name != "" {
		return fmt.Sprintf("%q", t.nodes[id].name)
	}
	return fmt.Sprintf("#%d", id)
}
