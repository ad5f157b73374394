package ecs

// SparseSet is a cache-friendly storage for one component kind. Values are
// stored as `any` so the world can hold stores of every kind in one map; the
// typed accessors in generics.go do the casting.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

// Has returns true if the exact entity handle (slot and generation) is in the set.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil {
		return false
	}
	slot := int(e.id()) - 1
	if slot < 0 || slot >= len(s.sparse) {
		return false
	}
	idx := s.sparse[slot]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.values[s.sparse[int(e.id())-1]]
}

// Set inserts or replaces the component for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	slot := int(e.id()) - 1
	for slot >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[slot]; idx >= 0 && idx < len(s.dense) && s.dense[idx].id() == e.id() {
		// Same slot: either the same entity or a stale generation left behind.
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[slot] = len(s.dense) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	slot := int(e.id()) - 1
	idx := s.sparse[slot]
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[int(moved.id())-1] = idx

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[slot] = -1
	return true
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}
