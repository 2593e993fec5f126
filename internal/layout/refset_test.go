package layout

import (
	"slices"
	"testing"
)

func TestRefSet_Multiset(t *testing.T) {
	var s refSet
	s.add(1)
	s.add(2)
	s.add(1)

	if s.len() != 3 {
		t.Errorf("len() = %d, want 3", s.len())
	}
	if got, want := s.ids(), []ConstraintID{1, 2}; !slices.Equal(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}

	if !s.remove(1) {
		t.Fatal("remove(1) = false, want true")
	}
	if !s.has(1) {
		t.Error("has(1) = false after removing one of two occurrences")
	}
	s.remove(1)
	if s.has(1) {
		t.Error("has(1) = true after removing every occurrence")
	}
	if s.remove(1) {
		t.Error("remove of an absent handle returned true")
	}
	if got, want := s.ids(), []ConstraintID{2}; !slices.Equal(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}
}

func TestRefSet_CompactionKeepsOrder(t *testing.T) {
	var s refSet
	for id := ConstraintID(1); id <= 5; id++ {
		s.add(id)
	}
	s.remove(1)
	s.remove(3)
	s.remove(2)

	if len(s.items) != 2 {
		t.Errorf("len(items) = %d after compaction, want 2", len(s.items))
	}
	s.add(1)
	if got, want := s.ids(), []ConstraintID{4, 5, 1}; !slices.Equal(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}
	s.remove(5)
	if got, want := s.ids(), []ConstraintID{4, 1}; !slices.Equal(got, want) {
		t.Errorf("ids() = %v, want %v", got, want)
	}
}

func TestRefSet_RemoveAll(t *testing.T) {
	var s refSet
	s.add(7)
	s.add(7)
	s.add(8)
	s.removeAll(7)

	if s.has(7) {
		t.Error("has(7) = true after removeAll")
	}
	if s.len() != 1 {
		t.Errorf("len() = %d, want 1", s.len())
	}
}
