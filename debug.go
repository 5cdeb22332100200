package orrery

import (
	"sort"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/orrery-engine/orrery/types"
)

// DebugStateElement is one live entity and its components, rendered for
// diagnostics.
type DebugStateElement struct {
	ID         types.EntityID             `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}

// DebugState renders a JSON snapshot of every live entity and its components,
// ordered by entity id. The output is a diagnostic aid for logs and debugging
// sessions, not a persistence format: it cannot be loaded back.
func (w *World) DebugState() ([]byte, error) {
	elements := make([]DebugStateElement, 0, w.entities.Len())
	var marshalErr error
	w.entities.Each(func(e types.EntityID, _ struct{}) bool {
		element := DebugStateElement{
			ID:         e,
			Components: make(map[string]json.RawMessage),
		}
		for id := 0; id < w.registry.count(); id++ {
			store, ok := w.stores.Peek(types.ComponentID(id))
			if !ok {
				continue
			}
			c, ok := store.Get(e)
			if !ok {
				continue
			}
			raw, err := json.Marshal(c)
			if err != nil {
				marshalErr = eris.Wrapf(err, "marshal component %q", w.registry.nameOf(types.ComponentID(id)))
				return false
			}
			element.Components[w.registry.nameOf(types.ComponentID(id))] = raw
		}
		elements = append(elements, element)
		return true
	})
	if marshalErr != nil {
		return nil, marshalErr
	}
	sort.Slice(elements, func(i, j int) bool {
		return elements[i].ID < elements[j].ID
	})
	return json.MarshalIndent(elements, "", "  ")
}
