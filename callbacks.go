package orrery

import (
	"github.com/orrery-engine/orrery/types"
)

// EntityCallback observes entity creation or removal.
type EntityCallback func(types.EntityID)

// ComponentCallback observes a component (or tagged component) being added to
// or removed from an entity.
type ComponentCallback func(types.EntityID, types.Component)

type callbackEntry[F any] struct {
	id int
	fn F
}

// callbackList holds observer callbacks in registration order and hands out
// unsubscribe closures. Callbacks fire synchronously at the point of the
// triggering mutation.
type callbackList[F any] struct {
	nextID  int
	entries []callbackEntry[F]
}

func (l *callbackList[F]) add(fn F) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, callbackEntry[F]{id: id, fn: fn})
	return func() {
		l.remove(id)
	}
}

func (l *callbackList[F]) remove(id int) {
	for i, entry := range l.entries {
		if entry.id == id {
			// Fresh backing array so an in-flight notification keeps walking
			// the slice it started with.
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}
