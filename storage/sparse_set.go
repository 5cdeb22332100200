package storage

import (
	"github.com/orrery-engine/orrery/types"
)

// tombstone marks an empty slot in the sparse index.
const tombstone = -1

// SparseSet stores one value per entity with O(1) add, remove and lookup. A
// pair of dense slices keeps entries packed for cache-friendly iteration; the
// sparse slice maps an entity id to its dense slot. Removal swap-pops the last
// dense entry into the vacated slot, so iteration order is not stable across
// removals.
type SparseSet[T any] struct {
	entities []types.EntityID
	values   []T
	sparse   []int
}

// NewSparseSet returns an empty set with room for capacity entries.
func NewSparseSet[T any](capacity int) *SparseSet[T] {
	return &SparseSet[T]{
		entities: make([]types.EntityID, 0, capacity),
		values:   make([]T, 0, capacity),
	}
}

// Add inserts v for e. It reports false, without modifying the set, when e is
// already present.
func (s *SparseSet[T]) Add(e types.EntityID, v T) bool {
	if s.Has(e) {
		return false
	}
	for len(s.sparse) <= int(e) {
		s.sparse = append(s.sparse, tombstone)
	}
	s.sparse[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
	return true
}

// Remove deletes e's entry, moving the last dense entry into its slot. It
// reports false when e is absent.
func (s *SparseSet[T]) Remove(e types.EntityID) bool {
	idx, ok := s.slot(e)
	if !ok {
		return false
	}
	last := len(s.entities) - 1
	lastEntity := s.entities[last]
	s.entities[idx] = lastEntity
	s.values[idx] = s.values[last]
	s.sparse[lastEntity] = idx

	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.sparse[e] = tombstone
	return true
}

// Get returns the value stored for e.
func (s *SparseSet[T]) Get(e types.EntityID) (T, bool) {
	idx, ok := s.slot(e)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[idx], true
}

// Update overwrites e's value in place, without changing its dense slot. It
// reports false when e is absent.
func (s *SparseSet[T]) Update(e types.EntityID, v T) bool {
	idx, ok := s.slot(e)
	if !ok {
		return false
	}
	s.values[idx] = v
	return true
}

// Has reports whether e is present.
func (s *SparseSet[T]) Has(e types.EntityID) bool {
	_, ok := s.slot(e)
	return ok
}

// Len returns the number of entries.
func (s *SparseSet[T]) Len() int {
	return len(s.entities)
}

// First returns the entry at dense index 0. Because removal swap-pops, this is
// the arbitrary current first element, not the oldest insertion.
func (s *SparseSet[T]) First() (types.EntityID, T, bool) {
	if len(s.entities) == 0 {
		var zero T
		return 0, zero, false
	}
	return s.entities[0], s.values[0], true
}

// Each calls fn for every entry in current dense order. Return false to stop.
// Mutating the set during iteration may skip or repeat entries; callers that
// need to mutate must materialize the id list first.
func (s *SparseSet[T]) Each(fn func(types.EntityID, T) bool) {
	for i := range s.entities {
		if !fn(s.entities[i], s.values[i]) {
			return
		}
	}
}

// Entities returns the dense entity slice. The slice aliases internal storage
// and is invalidated by the next mutation.
func (s *SparseSet[T]) Entities() []types.EntityID {
	return s.entities
}

func (s *SparseSet[T]) slot(e types.EntityID) (int, bool) {
	if int(e) >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[e]
	return idx, idx != tombstone
}
