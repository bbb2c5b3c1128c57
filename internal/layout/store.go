package layout

// Store caches LayoutInfo by node. It is owned by a Tree and only mutated by
// the layout pass and structural tree changes.
type Store struct {
	data map[NodeID]*LayoutInfo
}

func newStore() *Store {
	return &Store{data: make(map[NodeID]*LayoutInfo)}
}

// LayoutInfo returns the entry for id.
func (s *Store) LayoutInfo(id NodeID) (*LayoutInfo, bool) {
	info, ok := s.data[id]
	return info, ok
}

// LayoutInfoOrDefault returns the entry for id, inserting an empty one with
// an unlimited clamp if it does not exist yet.
func (s *Store) LayoutInfoOrDefault(id NodeID) *LayoutInfo {
	info, ok := s.data[id]
	if !ok {
		info = &LayoutInfo{Clamp: Unlimited()}
		s.data[id] = info
	}
	return info
}

// LayoutBoxSize returns the measured size of id.
func (s *Store) LayoutBoxSize(id NodeID) (Size, bool) {
	info, ok := s.data[id]
	if !ok || info.Size == nil {
		return Size{}, false
	}
	return *info.Size, true
}

// LayoutBoxPos returns the position of id relative to its parent.
func (s *Store) LayoutBoxPos(id NodeID) (Point, bool) {
	info, ok := s.data[id]
	if !ok {
		return Point{}, false
	}
	return info.Pos, true
}

// LayoutBoxRect returns the box of id in its parent's space.
func (s *Store) LayoutBoxRect(id NodeID) (Rect, bool) {
	info, ok := s.data[id]
	if !ok {
		return Rect{}, false
	}
	return info.BoxRect()
}

// Remove evicts the entry for id and returns it.
func (s *Store) Remove(id NodeID) (*LayoutInfo, bool) {
	info, ok := s.data[id]
	delete(s.data, id)
	return info, ok
}

// ForceLayout evicts the entry for id so the next pass treats the node as
// never laid out.
func (s *Store) ForceLayout(id NodeID) (*LayoutInfo, bool) {
	return s.Remove(id)
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return len(s.data)
}
