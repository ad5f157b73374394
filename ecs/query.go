package ecs

import "github.com/milk9111/thicket/ecs/component"

// Kind is satisfied by every component.ComponentKind[T].
type Kind interface {
	ID() component.ComponentID
}

// IntersectEntities returns the entities present in every set, in the order
// of the smallest set.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].dense {
		ok := true
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// Query returns a snapshot of the live entities carrying every kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(kinds))
	for i, k := range kinds {
		s := w.stores[k.ID()]
		if s == nil {
			return nil
		}
		sets[i] = s
	}
	return IntersectEntities(sets...)
}

// First returns any live entity carrying kind.
func (w *World) First(kind Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.stores[kind.ID()]
	if s.Len() == 0 {
		return 0, false
	}
	return s.dense[0], true
}

// Single returns the entity carrying kind only when exactly one exists.
func (w *World) Single(kind Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.stores[kind.ID()]
	if s.Len() != 1 {
		return 0, false
	}
	return s.dense[0], true
}

// Count returns how many entities carry kind.
func (w *World) Count(kind Kind) int {
	if w == nil {
		return 0
	}
	return w.stores[kind.ID()].Len()
}
