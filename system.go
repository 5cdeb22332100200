package orrery

import (
	"reflect"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/orrery-engine/orrery/events"
	ecslog "github.com/orrery-engine/orrery/log"
)

// System is implemented by every per-tick logic unit. Concrete systems embed
// *BaseSystem, which carries the World binding and the activation state
// machine, and may additionally implement Starter, Updater and Stopper for
// custom lifecycle behavior.
type System interface {
	base() *BaseSystem
}

// Starter is implemented by systems with custom startup logic.
type Starter interface {
	Startup()
}

// Updater is implemented by systems that do per-tick work.
type Updater interface {
	Update(dt time.Duration)
}

// Stopper is implemented by systems with custom shutdown logic.
type Stopper interface {
	Shutdown()
}

// StartedCallback runs when its system activates. A non-nil return value is
// queued as a one-shot shutdown callback for the next deactivation.
type StartedCallback func() func()

// BaseSystem is the mandatory embedded core of every system. It binds the
// system to exactly one World and tracks the inactive/active state machine.
// Misusing the state machine (starting an active system, updating or stopping
// an inactive one) is a programmer error and panics.
type BaseSystem struct {
	world     *World
	logger    *zerolog.Logger
	active    bool
	started   []StartedCallback
	onStopped []func()
}

// NewBaseSystem binds a system under construction to its World. Systems cannot
// exist unattached: a nil World panics.
func NewBaseSystem(w *World) *BaseSystem {
	if w == nil {
		panic("orrery: system constructed without a world")
	}
	return &BaseSystem{world: w}
}

func (b *BaseSystem) base() *BaseSystem { return b }

// World returns the World this system is bound to.
func (b *BaseSystem) World() *World { return b.world }

// Active reports whether the system is currently started.
func (b *BaseSystem) Active() bool { return b.active }

// Logger returns a logger tagged with the system's type name. It is nil until
// the system has been registered through AddSystem.
func (b *BaseSystem) Logger() *zerolog.Logger { return b.logger }

// SendEvent forwards to the bound World's event bus.
func (b *BaseSystem) SendEvent(t events.Type, payload any) {
	b.world.SendEvent(t, payload)
}

// ReceiveEvent subscribes on the bound World's event bus, returning an
// unsubscribe closure.
func (b *BaseSystem) ReceiveEvent(t events.Type, l events.Listener) func() {
	return b.world.ReceiveEvent(t, l)
}

// WhenStarted registers callbacks that fire on every future activation. If the
// system is already active they fire immediately. A callback's non-nil return
// value is queued as a one-shot shutdown callback.
func (b *BaseSystem) WhenStarted(cbs ...StartedCallback) {
	b.started = append(b.started, cbs...)
	if b.active {
		for _, cb := range cbs {
			b.collectShutdown(cb())
		}
	}
}

// WhenShutdown registers one-shot callbacks that fire on the next deactivation
// only. They are deliberately not re-armed after a restart; re-register from a
// WhenStarted callback to run on every shutdown.
func (b *BaseSystem) WhenShutdown(cbs ...func()) {
	b.onStopped = append(b.onStopped, cbs...)
}

// start drives the inactive→active transition. sys is the outermost system
// value embedding b, so its optional lifecycle interfaces are visible.
func (b *BaseSystem) start(sys System) {
	if b.active {
		panic("orrery: system started while active")
	}
	b.active = true
	if s, ok := sys.(Starter); ok {
		s.Startup()
	}
	for _, cb := range b.started {
		b.collectShutdown(cb())
	}
}

func (b *BaseSystem) update(sys System, dt time.Duration) {
	if !b.active {
		panic("orrery: system updated while inactive")
	}
	if u, ok := sys.(Updater); ok {
		u.Update(dt)
	}
}

// stop drives the active→inactive transition: queued shutdown callbacks run
// and are cleared before the user-defined Shutdown hook.
func (b *BaseSystem) stop(sys System) {
	if !b.active {
		panic("orrery: system stopped while inactive")
	}
	b.active = false
	cbs := b.onStopped
	b.onStopped = nil
	for _, cb := range cbs {
		cb()
	}
	if s, ok := sys.(Stopper); ok {
		s.Shutdown()
	}
}

func (b *BaseSystem) collectShutdown(fn func()) {
	if fn != nil {
		b.onStopped = append(b.onStopped, fn)
	}
}

// AddSystem constructs a system through ctor, explicitly bound to w, and
// registers it by exact type and in insertion order. If the world is already
// active the system starts immediately.
func AddSystem[S System](w *World, ctor func(*World) S) S {
	sys := ctor(w)
	name := w.systems.add(sys)
	sys.base().logger = ecslog.CreateSystemLogger(&w.Logger, name)
	w.Logger.Debug().Str("system", name).Msg("system registered")
	if w.active {
		sys.base().start(sys)
	}
	return sys
}

// GetSystem returns the registered system of exact type S. When no exact match
// exists it falls back to a linear scan for any registered system assignable
// to S.
func GetSystem[S System](w *World) (S, error) {
	if sys, ok := w.systems.lookup(reflect.TypeFor[S]()); ok {
		return sys.(S), nil
	}
	for _, sys := range w.systems.order {
		if s, ok := sys.(S); ok {
			return s, nil
		}
	}
	var zero S
	return zero, eris.Wrapf(ErrSystemNotFound, "get system %v", reflect.TypeFor[S]())
}

// RemoveSystem unregisters the system of exact type S, running its shutdown
// transition if it is active. Unlike GetSystem there is no assignability
// fallback.
func RemoveSystem[S System](w *World) error {
	sys, ok := w.systems.lookup(reflect.TypeFor[S]())
	if !ok {
		return eris.Wrapf(ErrSystemNotFound, "remove system %v", reflect.TypeFor[S]())
	}
	w.systems.remove(sys)
	if sys.base().active {
		sys.base().stop(sys)
	}
	return nil
}
