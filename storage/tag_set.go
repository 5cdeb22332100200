package storage

import (
	"github.com/orrery-engine/orrery/types"
)

// TagSet groups the per-type stores of every component type sharing one tag so
// they can be read as a single collection. Grouped stores are iterated in the
// order their component types first joined the tag.
type TagSet struct {
	order  []types.ComponentID
	stores *AutoMap[types.ComponentID, *SparseSet[types.Component]]
}

// NewTagSet returns an empty tag group.
func NewTagSet() *TagSet {
	ts := &TagSet{}
	ts.stores = NewAutoMap(func(id types.ComponentID) *SparseSet[types.Component] {
		ts.order = append(ts.order, id)
		return NewSparseSet[types.Component](0)
	})
	return ts
}

// Add inserts e's component of type id into the group.
func (ts *TagSet) Add(id types.ComponentID, e types.EntityID, c types.Component) bool {
	return ts.stores.Get(id).Add(e, c)
}

// Remove deletes e's component of type id from the group, reporting whether an
// entry was removed.
func (ts *TagSet) Remove(id types.ComponentID, e types.EntityID) bool {
	store, ok := ts.stores.Peek(id)
	if !ok {
		return false
	}
	return store.Remove(e)
}

// Get returns e's component of type id.
func (ts *TagSet) Get(id types.ComponentID, e types.EntityID) (types.Component, bool) {
	store, ok := ts.stores.Peek(id)
	if !ok {
		return nil, false
	}
	return store.Get(e)
}

// Len returns the total number of (entity, component) pairs in the group.
func (ts *TagSet) Len() int {
	total := 0
	for _, id := range ts.order {
		if store, ok := ts.stores.Peek(id); ok {
			total += store.Len()
		}
	}
	return total
}

// Each flattens the group, calling fn for every (entity, component) pair under
// the tag. Return false to stop.
func (ts *TagSet) Each(fn func(types.EntityID, types.Component) bool) {
	for _, id := range ts.order {
		store, ok := ts.stores.Peek(id)
		if !ok {
			continue
		}
		stopped := false
		store.Each(func(e types.EntityID, c types.Component) bool {
			if !fn(e, c) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}

// EachOf calls fn for each of e's components that belong to the tag. The scan
// is linear in the number of grouped types.
// TODO: keep a per-entity index once a profile shows tag groups wide enough to
// matter.
func (ts *TagSet) EachOf(e types.EntityID, fn func(types.Component) bool) {
	for _, id := range ts.order {
		store, ok := ts.stores.Peek(id)
		if !ok {
			continue
		}
		if c, ok := store.Get(e); ok {
			if !fn(c) {
				return
			}
		}
	}
}
