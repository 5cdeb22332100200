package orrery

import (
	"github.com/orrery-engine/orrery/storage"
	"github.com/orrery-engine/orrery/types"
)

// Search lazily joins several component stores. The requested store with the
// fewest entries drives the iteration; every other requested store is probed
// per entity and entities missing any requested component are skipped. If any
// requested store is empty or unknown the search yields nothing.
//
// Stores are re-resolved on every Each/Count/First call, so a Search can be
// built once and reused across ticks.
type Search struct {
	world *World
	names []string
	buf   []types.Component
}

// Search creates a search over the component types of the given samples. The
// sample values themselves are only used for their names.
func (w *World) Search(samples ...types.Component) *Search {
	names := make([]string, len(samples))
	for i, sample := range samples {
		names[i] = sample.Name()
	}
	return &Search{
		world: w,
		names: names,
		buf:   make([]types.Component, len(samples)),
	}
}

// Each calls fn for every entity that holds all requested components, passing
// the components in the order the samples were given. The comps slice is one
// buffer reused across calls: copy it before retaining anything past the
// callback (or use EachCopy). Return false to stop.
//
// Mutating any searched store from inside fn is unsupported and may skip or
// repeat entities; materialize the id list first if mutation is needed.
func (s *Search) Each(fn func(e types.EntityID, comps []types.Component) bool) {
	stores, driver, ok := s.resolve()
	if !ok {
		return
	}
	stores[driver].Each(func(e types.EntityID, c types.Component) bool {
		s.buf[driver] = c
		for i, store := range stores {
			if i == driver {
				continue
			}
			comp, ok := store.Get(e)
			if !ok {
				return true
			}
			s.buf[i] = comp
		}
		return fn(e, s.buf)
	})
}

// EachCopy behaves like Each but hands the callback a fresh slice per entity,
// safe to retain.
func (s *Search) EachCopy(fn func(e types.EntityID, comps []types.Component) bool) {
	s.Each(func(e types.EntityID, comps []types.Component) bool {
		return fn(e, append([]types.Component(nil), comps...))
	})
}

// Count returns the number of entities holding all requested components.
func (s *Search) Count() int {
	count := 0
	s.Each(func(types.EntityID, []types.Component) bool {
		count++
		return true
	})
	return count
}

// First returns the first matching entity in the driver store's current dense
// order, which is arbitrary after removals.
func (s *Search) First() (types.EntityID, bool) {
	var found types.EntityID
	ok := false
	s.Each(func(e types.EntityID, _ []types.Component) bool {
		found, ok = e, true
		return false
	})
	return found, ok
}

// resolve maps the requested names to their stores and picks the smallest as
// the iteration driver. ok is false when any store is missing or empty.
func (s *Search) resolve() (stores []*storage.SparseSet[types.Component], driver int, ok bool) {
	stores = make([]*storage.SparseSet[types.Component], len(s.names))
	for i, name := range s.names {
		id, found := s.world.registry.lookup(name)
		if !found {
			return nil, 0, false
		}
		store, found := s.world.stores.Peek(id)
		if !found || store.Len() == 0 {
			return nil, 0, false
		}
		stores[i] = store
		if store.Len() < stores[driver].Len() {
			driver = i
		}
	}
	if len(stores) == 0 {
		return nil, 0, false
	}
	return stores, driver, true
}

// EachTag calls fn for every (entity, component) pair registered under tag.
// Return false to stop.
func (w *World) EachTag(tag types.Tag, fn func(types.EntityID, types.Component) bool) {
	if ts, ok := w.tags.Peek(tag); ok {
		ts.Each(fn)
	}
}

// EachTagOf calls fn for each of e's components that belong to tag. Return
// false to stop.
func (w *World) EachTagOf(e types.EntityID, tag types.Tag, fn func(types.Component) bool) {
	if ts, ok := w.tags.Peek(tag); ok {
		ts.EachOf(e, fn)
	}
}
