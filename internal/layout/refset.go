package layout

// refSet is an insertion-ordered multiset of constraint handles.
// Removal is O(1): entries are tombstoned and the backing slice is
// compacted once holes outnumber live entries.
type refSet struct {
	items []refEntry
	pos   map[ConstraintID]int
	total int
	holes int
}

type refEntry struct {
	id    ConstraintID
	count int
}

func (s *refSet) add(id ConstraintID) {
	if s.pos == nil {
		s.pos = make(map[ConstraintID]int)
	}
	s.total++
	if i, ok := s.pos[id]; ok {
		s.items[i].count++
		return
	}
	s.pos[id] = len(s.items)
	s.items = append(s.items, refEntry{id: id, count: 1})
}

// remove drops one occurrence of id. Returns false if id is absent.
func (s *refSet) remove(id ConstraintID) bool {
	i, ok := s.pos[id]
	if !ok {
		return false
	}
	s.total--
	s.items[i].count--
	if s.items[i].count > 0 {
		return true
	}
	delete(s.pos, id)
	s.items[i] = refEntry{id: NoConstraint}
	s.holes++
	if s.holes > len(s.pos) {
		s.compact()
	}
	return true
}

// removeAll drops every occurrence of id.
func (s *refSet) removeAll(id ConstraintID) {
	for s.remove(id) {
	}
}

func (s *refSet) compact() {
	live := s.items[:0]
	for _, e := range s.items {
		if e.id == NoConstraint {
			continue
		}
		s.pos[e.id] = len(live)
		live = append(live, e)
	}
	clear(s.items[len(live):])
	s.items = live
	s.holes = 0
}

func (s *refSet) has(id ConstraintID) bool {
	_, ok := s.pos[id]
	return ok
}

// len counts occurrences, not distinct handles.
func (s *refSet) len() int {
	return s.total
}

// ids returns distinct handles in insertion order.
func (s *refSet) ids() []ConstraintID {
	out := make([]ConstraintID, 0, len(s.pos))
	for _, e := range s.items {
		if e.id != NoConstraint {
			out = append(out, e.id)
		}
	}
	return out
}
