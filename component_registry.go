package orrery

import (
	"github.com/orrery-engine/orrery/types"
)

// componentRegistry assigns a dense ComponentID to every component name the
// world has seen and remembers each type's tag membership. Tags are captured
// from the first component value observed for a name; registrations that only
// know the name (callback subscriptions) leave tags to be filled in later.
type componentRegistry struct {
	ids       map[string]types.ComponentID
	names     []string
	tags      [][]types.Tag
	tagsKnown []bool
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		ids: make(map[string]types.ComponentID),
	}
}

// register returns the id for c's name, assigning one on first sight, and
// captures c's tag membership if it is not known yet.
func (r *componentRegistry) register(c types.Component) types.ComponentID {
	id := r.registerName(c.Name())
	if !r.tagsKnown[id] {
		if tagged, ok := c.(types.Tagged); ok {
			r.tags[id] = append([]types.Tag(nil), tagged.Tags()...)
		}
		r.tagsKnown[id] = true
	}
	return id
}

// registerName returns the id for name, assigning one on first sight. Tag
// membership stays unknown until a value of the type is registered.
func (r *componentRegistry) registerName(name string) types.ComponentID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := types.ComponentID(len(r.names))
	r.ids[name] = id
	r.names = append(r.names, name)
	r.tags = append(r.tags, nil)
	r.tagsKnown = append(r.tagsKnown, false)
	return id
}

// lookup returns the id for name without registering it.
func (r *componentRegistry) lookup(name string) (types.ComponentID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

func (r *componentRegistry) tagsOf(id types.ComponentID) []types.Tag {
	return r.tags[id]
}

func (r *componentRegistry) nameOf(id types.ComponentID) string {
	return r.names[id]
}

// count returns the number of component types ever seen by the world.
func (r *componentRegistry) count() int {
	return len(r.names)
}
