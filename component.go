package orrery

import (
	"github.com/rotisserie/eris"

	"github.com/orrery-engine/orrery/types"
)

// AddComponent attaches comp to e. If e already holds a component with the
// same name the old value is fully removed first, firing its removal
// callbacks, before comp is stored and the added callbacks fire. Components
// belonging to tags are mirrored into each tag's store, firing tag-added
// callbacks per tag.
func (w *World) AddComponent(e types.EntityID, comp types.Component) error {
	if !w.entities.Has(e) {
		return eris.Wrapf(ErrEntityDoesNotExist, "add component %q", comp.Name())
	}

	id := w.registry.register(comp)
	store := w.stores.Get(id)
	if store.Has(e) {
		w.removeComponentByID(e, id)
	}
	store.Add(e, comp)
	w.notifyComponentAdded(id, e, comp)
	for _, tag := range w.registry.tagsOf(id) {
		w.tags.Get(tag).Add(id, e, comp)
		w.notifyTagAdded(tag, e, comp)
	}
	return nil
}

// AddComponentTo attaches T's zero value to e. It is the shorthand for
// components that need no initialization.
func AddComponentTo[T types.Component](w *World, e types.EntityID) error {
	var t T
	return w.AddComponent(e, t)
}

// AddSingletonComponent attaches comp to the singleton entity.
func (w *World) AddSingletonComponent(comp types.Component) error {
	return w.AddComponent(types.SingletonID, comp)
}

// RemoveComponent removes e's component of type T. Removing a component the
// entity does not hold is a no-op, not an error.
func RemoveComponent[T types.Component](w *World, e types.EntityID) error {
	return w.RemoveComponentByName(e, componentName[T]())
}

// RemoveComponentByName removes e's component with the given name, firing
// component-removed callbacks and mirroring the removal into any tag stores.
// Absent components are a no-op.
func (w *World) RemoveComponentByName(e types.EntityID, name string) error {
	if !w.entities.Has(e) {
		return eris.Wrapf(ErrEntityDoesNotExist, "remove component %q", name)
	}
	id, ok := w.registry.lookup(name)
	if !ok {
		return nil
	}
	w.removeComponentByID(e, id)
	return nil
}

// removeComponentByID removes e's component of type id if present, firing the
// removal callbacks and sweeping the tag stores. It reports whether a
// component was removed.
func (w *World) removeComponentByID(e types.EntityID, id types.ComponentID) bool {
	store, ok := w.stores.Peek(id)
	if !ok {
		return false
	}
	comp, ok := store.Get(e)
	if !ok {
		return false
	}
	store.Remove(e)
	w.notifyComponentRemoved(id, e, comp)
	for _, tag := range w.registry.tagsOf(id) {
		if tagStore, ok := w.tags.Peek(tag); ok && tagStore.Remove(id, e) {
			w.notifyTagRemoved(tag, e, comp)
		}
	}
	return true
}

// GetComponent returns the value of T held by e.
func GetComponent[T types.Component](w *World, e types.EntityID) (T, error) {
	var zero T
	name := zero.Name()
	if !w.entities.Has(e) {
		return zero, eris.Wrapf(ErrEntityDoesNotExist, "get component %q", name)
	}
	c, ok := w.Component(e, name)
	if !ok {
		return zero, eris.Wrapf(ErrComponentNotOnEntity, "get component %q", name)
	}
	return c.(T), nil
}

// Component returns e's component with the given name, or (nil, false) when
// either the entity or the component is absent.
func (w *World) Component(e types.EntityID, name string) (types.Component, bool) {
	id, ok := w.registry.lookup(name)
	if !ok {
		return nil, false
	}
	store, ok := w.stores.Peek(id)
	if !ok {
		return nil, false
	}
	return store.Get(e)
}

// GetSingletonComponent returns the singleton entity's component of type T.
func GetSingletonComponent[T types.Component](w *World) (T, error) {
	return GetComponent[T](w, types.SingletonID)
}

// GetOneComponent returns the current first instance of T in the world. The
// uniqueness contract is soft: if more than one instance exists a warning is
// logged once per component type and an arbitrary instance is returned.
func GetOneComponent[T types.Component](w *World) (T, error) {
	var zero T
	name := zero.Name()
	id, ok := w.registry.lookup(name)
	if !ok {
		return zero, eris.Wrapf(ErrComponentNotFound, "get one %q", name)
	}
	store, ok := w.stores.Peek(id)
	if !ok {
		return zero, eris.Wrapf(ErrComponentNotFound, "get one %q", name)
	}
	if store.Len() > 1 {
		if _, warned := w.warnedMultiple[id]; !warned {
			w.warnedMultiple[id] = struct{}{}
			w.Logger.Warn().
				Str("component", name).
				Int("instances", store.Len()).
				Msg("GetOneComponent found multiple instances")
		}
	}
	_, c, ok := store.First()
	if !ok {
		return zero, eris.Wrapf(ErrComponentNotFound, "get one %q", name)
	}
	return c.(T), nil
}

// HasComponent reports whether e holds a component of type T.
func HasComponent[T types.Component](w *World, e types.EntityID) bool {
	_, ok := w.Component(e, componentName[T]())
	return ok
}

// UpdateComponent reads e's component of type T, applies fn and writes the
// result back in place. Unlike AddComponent it does not run the
// remove-then-add replacement, so no observer callbacks fire.
func UpdateComponent[T types.Component](w *World, e types.EntityID, fn func(*T) *T) error {
	val, err := GetComponent[T](w, e)
	if err != nil {
		return err
	}
	updated := fn(&val)
	if updated == nil {
		return eris.Errorf("update of component %q returned nil", val.Name())
	}
	id, _ := w.registry.lookup(val.Name())
	store, _ := w.stores.Peek(id)
	store.Update(e, *updated)
	return nil
}

// OnComponentAdded registers fn to fire whenever a component of type T is
// added to any entity. It returns an unsubscribe closure.
func OnComponentAdded[T types.Component](w *World, fn func(types.EntityID, T)) func() {
	return w.OnComponentAddedNamed(componentName[T](), func(e types.EntityID, c types.Component) {
		fn(e, c.(T))
	})
}

// OnComponentRemoved registers fn to fire whenever a component of type T is
// removed from any entity. It returns an unsubscribe closure.
func OnComponentRemoved[T types.Component](w *World, fn func(types.EntityID, T)) func() {
	return w.OnComponentRemovedNamed(componentName[T](), func(e types.EntityID, c types.Component) {
		fn(e, c.(T))
	})
}

// componentName resolves T's registered name through its zero value.
func componentName[T types.Component]() string {
	var t T
	return t.Name()
}
