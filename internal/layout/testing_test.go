package layout

import "testing"

// newTestTree returns a tree whose root has been resized to w x h.
func newTestTree(t *testing.T, w, h int, opts ...Option) *Tree {
	t.Helper()
	tree, err := New(DefaultHost(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	tree.Resize(w, h)
	return tree
}

func mustAdd(t *testing.T, tree *Tree, parent NodeID, name string) NodeID {
	t.Helper()
	id, err := tree.Add(parent, Named(name))
	if err != nil {
		t.Fatalf("Add(%q) error = %v", name, err)
	}
	return id
}

// must panics on err. Declarations in tests are expected to succeed.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustLayout(t *testing.T, tree *Tree) {
	t.Helper()
	if err := tree.Layout(); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
}

func coordOf(t *testing.T, tree *Tree, id NodeID, c Coord) int {
	t.Helper()
	v, ok := tree.Coord(id, c)
	if !ok {
		t.Fatalf("%s of %s is unresolved", c, tree.label(id))
	}
	return v
}

func assertRect(t *testing.T, tree *Tree, id NodeID, want Rect) {
	t.Helper()
	got, ok := tree.Rect(id)
	if !ok {
		t.Fatalf("Rect(%s) unresolved", tree.label(id))
	}
	if got != want {
		t.Errorf("Rect(%s) = %+v, want %+v", tree.label(id), got, want)
	}
}

