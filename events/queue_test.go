package events_test

import (
	"testing"

	"github.com/orrery-engine/orrery/assert"
	"github.com/orrery-engine/orrery/events"
)

const evSpawn events.Type = "spawn"

func TestQueueDispatchDeliversInInsertionOrder(t *testing.T) {
	q := events.NewQueue()

	var got []any
	q.Register(evSpawn, func(p any) { got = append(got, p) })

	q.Push(evSpawn, "x")
	q.Push(evSpawn, "y")
	q.DispatchQueue()

	assert.DeepEqual(t, got, []any{"x", "y"})
}

func TestQueueDispatchDoesNotConsume(t *testing.T) {
	q := events.NewQueue()

	calls := 0
	q.Register(evSpawn, func(p any) {
		calls++
		assert.Equal(t, p, "x")
	})

	q.Push(evSpawn, "x")
	q.DispatchQueue()
	q.DispatchQueue()
	assert.Equal(t, calls, 2, "redispatch without Clear redelivers the same event")
	assert.Equal(t, q.Len(), 1)
}

func TestQueuePushDuringDispatchIsDeferred(t *testing.T) {
	q := events.NewQueue()

	var got []any
	q.Register(evSpawn, func(p any) {
		got = append(got, p)
		if p == "first" {
			q.Push(evSpawn, "nested")
		}
	})

	q.Push(evSpawn, "first")
	q.DispatchQueue()
	// The nested push must not extend the current pass.
	assert.DeepEqual(t, got, []any{"first"})

	// The nested event only becomes visible after a Clear swaps the buffers.
	q.Clear()
	q.DispatchQueue()
	assert.DeepEqual(t, got, []any{"first", "nested"})
}

func TestQueueClearSwapsBuffers(t *testing.T) {
	q := events.NewQueue()
	q.Push(evSpawn, 1)
	q.DispatchAndClear()
	assert.Equal(t, q.Len(), 0)

	// Events pushed after Clear land in the new front buffer.
	q.Push(evSpawn, 2)
	assert.Equal(t, q.Len(), 1)
}

func TestQueueDispatchAndClearIsOnePass(t *testing.T) {
	q := events.NewQueue()

	calls := 0
	q.Register(evSpawn, func(any) { calls++ })

	q.Push(evSpawn, nil)
	q.DispatchAndClear()
	q.DispatchAndClear()
	assert.Equal(t, calls, 1)
}

func TestQueueEachExposesFrontBuffer(t *testing.T) {
	q := events.NewQueue()
	q.Push(evSpawn, "a")
	q.Push(evSpawn, "b")

	var payloads []any
	q.Each(func(tp events.Type, p any) bool {
		assert.Equal(t, tp, evSpawn)
		payloads = append(payloads, p)
		return true
	})
	assert.DeepEqual(t, payloads, []any{"a", "b"})
}

func TestQueuePanicAbortsDispatch(t *testing.T) {
	q := events.NewQueue()

	delivered := 0
	q.Register(evSpawn, func(p any) {
		if p == "boom" {
			panic("listener exploded")
		}
		delivered++
	})

	q.Push(evSpawn, "boom")
	q.Push(evSpawn, "after")
	assert.Panics(t, func() { q.DispatchQueue() })
	assert.Equal(t, delivered, 0)
}
