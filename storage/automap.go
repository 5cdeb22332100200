package storage

// AutoMap is a map that constructs missing values through a factory on first
// access. It removes the lookup-then-insert boilerplate of registries keyed by
// component or tag identifiers.
type AutoMap[K comparable, V any] struct {
	factory func(K) V
	items   map[K]V
}

// NewAutoMap returns an empty map whose Get constructs defaults with factory.
func NewAutoMap[K comparable, V any](factory func(K) V) *AutoMap[K, V] {
	return &AutoMap[K, V]{
		factory: factory,
		items:   make(map[K]V),
	}
}

// Get returns the value for k, constructing and inserting it first if absent.
func (m *AutoMap[K, V]) Get(k K) V {
	if v, ok := m.items[k]; ok {
		return v
	}
	v := m.factory(k)
	m.items[k] = v
	return v
}

// Peek returns the value for k without constructing a default.
func (m *AutoMap[K, V]) Peek(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

// Delete removes k's entry if present.
func (m *AutoMap[K, V]) Delete(k K) {
	delete(m.items, k)
}

// Len returns the number of entries.
func (m *AutoMap[K, V]) Len() int {
	return len(m.items)
}

// Each calls fn for every entry, in unspecified order. Return false to stop.
func (m *AutoMap[K, V]) Each(fn func(K, V) bool) {
	for k, v := range m.items {
		if !fn(k, v) {
			return
		}
	}
}
