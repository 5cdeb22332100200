package events

// Event is one queued (type, payload) pair.
type Event struct {
	Type    Type
	Payload any
}

// Queue is the deferred, double-buffered event bus. Events accumulate in the
// front buffer and are delivered in insertion order by DispatchQueue. Pushes
// made while a dispatch is in flight land in the back buffer, so a listener
// can never extend the pass that invoked it; Clear swaps the buffers and those
// events become visible to the next dispatch.
//
// The usual per-tick call is DispatchAndClear. Listeners are not isolated: a
// panicking listener aborts the remaining dispatch loop and propagates.
type Queue struct {
	manager     *Manager
	front       []Event
	back        []Event
	dispatching bool
}

// NewQueue returns an empty queue with its own listener registry.
func NewQueue() *Queue {
	return &Queue{
		manager: NewManager(),
	}
}

// Register subscribes l to events of type t and returns an unsubscribe
// closure.
func (q *Queue) Register(t Type, l Listener) func() {
	return q.manager.Register(t, l)
}

// Push appends the event to the front buffer, or to the back buffer while a
// dispatch is in progress.
func (q *Queue) Push(t Type, payload any) {
	if q.dispatching {
		q.back = append(q.back, Event{Type: t, Payload: payload})
		return
	}
	q.front = append(q.front, Event{Type: t, Payload: payload})
}

// DispatchQueue delivers every front-buffer event, in insertion order, without
// consuming the buffer: a second call without an intervening Clear redelivers
// the same events. The queue stays in dispatch mode until Clear, so pushes
// from listeners are deferred to the back buffer.
func (q *Queue) DispatchQueue() {
	q.dispatching = true
	for _, ev := range q.front {
		q.manager.Notify(ev.Type, ev.Payload)
	}
}

// Clear swaps the buffers and leaves dispatch mode. Events pushed during the
// last dispatch become the new front buffer.
func (q *Queue) Clear() {
	q.front, q.back = q.back, q.front[:0]
	q.dispatching = false
}

// DispatchAndClear dispatches the front buffer, then clears it.
func (q *Queue) DispatchAndClear() {
	q.DispatchQueue()
	q.Clear()
}

// Each iterates the current front buffer. Return false to stop.
func (q *Queue) Each(fn func(Type, any) bool) {
	for _, ev := range q.front {
		if !fn(ev.Type, ev.Payload) {
			return
		}
	}
}

// Len returns the number of events in the front buffer.
func (q *Queue) Len() int {
	return len(q.front)
}
