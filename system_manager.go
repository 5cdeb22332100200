package orrery

import (
	"reflect"
)

// systemManager keeps registered systems in insertion order plus an index by
// exact concrete type. Insertion order is the order lifecycle hooks run in.
type systemManager struct {
	order  []System
	byType map[reflect.Type]System
}

func newSystemManager() *systemManager {
	return &systemManager{
		byType: make(map[reflect.Type]System),
	}
}

// add registers sys and returns its type name.
func (m *systemManager) add(sys System) string {
	t := reflect.TypeOf(sys)
	m.byType[t] = sys
	m.order = append(m.order, sys)
	return t.String()
}

// lookup finds a system by exact concrete type.
func (m *systemManager) lookup(t reflect.Type) (System, bool) {
	sys, ok := m.byType[t]
	return sys, ok
}

// remove drops sys from both the order and the type index.
func (m *systemManager) remove(sys System) {
	delete(m.byType, reflect.TypeOf(sys))
	for i, s := range m.order {
		if s == sys {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			return
		}
	}
}

// names returns the registered systems' type names in insertion order.
func (m *systemManager) names() []string {
	out := make([]string, 0, len(m.order))
	for _, sys := range m.order {
		out = append(out, reflect.TypeOf(sys).String())
	}
	return out
}
