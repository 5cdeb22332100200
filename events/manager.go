package events

// Type identifies one event stream on a bus. Values are declared by the
// application, typically as package-level constants.
type Type string

// Listener receives the payload of an event it subscribed to.
type Listener func(payload any)

type registration struct {
	id int
	fn Listener
}

// Manager is the immediate event bus. Notify delivers synchronously to every
// listener registered for the event's type, in registration order. Listeners
// are not isolated from each other: a panicking listener aborts the rest of
// the pass and propagates to the Notify caller.
type Manager struct {
	nextID    int
	listeners map[Type][]registration
}

// NewManager returns an empty bus.
func NewManager() *Manager {
	return &Manager{
		listeners: make(map[Type][]registration),
	}
}

// Register subscribes l to events of type t and returns a closure that
// unsubscribes it.
func (m *Manager) Register(t Type, l Listener) func() {
	m.nextID++
	id := m.nextID
	m.listeners[t] = append(m.listeners[t], registration{id: id, fn: l})
	return func() {
		m.unregister(t, id)
	}
}

// Notify invokes every listener currently registered for t with payload.
func (m *Manager) Notify(t Type, payload any) {
	for _, reg := range m.listeners[t] {
		reg.fn(payload)
	}
}

// Clear drops every registration.
func (m *Manager) Clear() {
	m.listeners = make(map[Type][]registration)
}

func (m *Manager) unregister(t Type, id int) {
	regs := m.listeners[t]
	for i, reg := range regs {
		if reg.id == id {
			// Copy into a fresh backing array so an in-flight Notify keeps
			// walking the slice it started with.
			m.listeners[t] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}
