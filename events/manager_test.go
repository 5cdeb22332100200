package events_test

import (
	"testing"

	"github.com/orrery-engine/orrery/assert"
	"github.com/orrery-engine/orrery/events"
)

const (
	evDamage events.Type = "damage"
	evHeal   events.Type = "heal"
)

func TestManagerNotifiesInRegistrationOrder(t *testing.T) {
	m := events.NewManager()

	var order []int
	m.Register(evDamage, func(any) { order = append(order, 1) })
	m.Register(evDamage, func(any) { order = append(order, 2) })
	m.Register(evDamage, func(any) { order = append(order, 3) })

	m.Notify(evDamage, nil)
	assert.DeepEqual(t, order, []int{1, 2, 3})
}

func TestManagerDeliversPayloadPerType(t *testing.T) {
	m := events.NewManager()

	var gotDamage, gotHeal any
	m.Register(evDamage, func(p any) { gotDamage = p })
	m.Register(evHeal, func(p any) { gotHeal = p })

	m.Notify(evDamage, 42)
	assert.Equal(t, gotDamage, 42)
	assert.Nil(t, gotHeal)
}

func TestManagerUnsubscribeClosure(t *testing.T) {
	m := events.NewManager()

	calls := 0
	unsubscribe := m.Register(evDamage, func(any) { calls++ })
	m.Register(evDamage, func(any) {})

	m.Notify(evDamage, nil)
	assert.Equal(t, calls, 1)

	unsubscribe()
	m.Notify(evDamage, nil)
	assert.Equal(t, calls, 1)

	// Unsubscribing twice is harmless.
	assert.NotPanics(t, func() { unsubscribe() })
}

func TestManagerClearDropsAllRegistrations(t *testing.T) {
	m := events.NewManager()

	calls := 0
	m.Register(evDamage, func(any) { calls++ })
	m.Register(evHeal, func(any) { calls++ })

	m.Clear()
	m.Notify(evDamage, nil)
	m.Notify(evHeal, nil)
	assert.Equal(t, calls, 0)
}

func TestManagerPanicPropagatesAndAbortsPass(t *testing.T) {
	m := events.NewManager()

	reached := false
	m.Register(evDamage, func(any) { panic("listener exploded") })
	m.Register(evDamage, func(any) { reached = true })

	assert.Panics(t, func() { m.Notify(evDamage, nil) })
	assert.False(t, reached, "listeners after a panicking one must not run")
}
