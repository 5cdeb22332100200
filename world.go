package orrery

import (
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/orrery-engine/orrery/events"
	ecslog "github.com/orrery-engine/orrery/log"
	"github.com/orrery-engine/orrery/storage"
	"github.com/orrery-engine/orrery/types"
)

// World orchestrates entities, component stores, tags, relationships, systems
// and events. It is single-threaded: all operations, including observer
// callbacks, run synchronously on the caller's goroutine.
//
// The external driving contract is Startup once, Update once per tick,
// Shutdown once at teardown. Out-of-order lifecycle calls log an error and
// no-op.
type World struct {
	namespace     string
	storeCapacity int

	nextID   types.EntityID
	entities *storage.SparseSet[struct{}]

	registry *componentRegistry
	stores   *storage.AutoMap[types.ComponentID, *storage.SparseSet[types.Component]]
	tags     *storage.AutoMap[types.Tag, *storage.TagSet]

	systems *systemManager

	entityCreated    callbackList[EntityCallback]
	entityRemoved    callbackList[EntityCallback]
	componentAdded   *storage.AutoMap[types.ComponentID, *callbackList[ComponentCallback]]
	componentRemoved *storage.AutoMap[types.ComponentID, *callbackList[ComponentCallback]]
	tagAdded         *storage.AutoMap[types.Tag, *callbackList[ComponentCallback]]
	tagRemoved       *storage.AutoMap[types.Tag, *callbackList[ComponentCallback]]

	events *events.Manager

	active         bool
	warnedMultiple map[types.ComponentID]struct{}

	Logger zerolog.Logger
}

// NewWorld creates a World configured from the environment and the given
// options. The singleton entity (id 0) is allocated as part of construction:
// the id counter is advanced once so the first CreateEntity hands out id 1.
func NewWorld(opts ...WorldOption) *World {
	cfg := GetWorldConfig()

	w := &World{
		namespace:      cfg.Namespace,
		entities:       storage.NewSparseSet[struct{}](0),
		registry:       newComponentRegistry(),
		systems:        newSystemManager(),
		events:         events.NewManager(),
		warnedMultiple: make(map[types.ComponentID]struct{}),
		Logger:         newLogger(cfg),
	}
	w.stores = storage.NewAutoMap(func(types.ComponentID) *storage.SparseSet[types.Component] {
		return storage.NewSparseSet[types.Component](w.storeCapacity)
	})
	w.tags = storage.NewAutoMap(func(types.Tag) *storage.TagSet {
		return storage.NewTagSet()
	})
	w.componentAdded = storage.NewAutoMap(func(types.ComponentID) *callbackList[ComponentCallback] {
		return &callbackList[ComponentCallback]{}
	})
	w.componentRemoved = storage.NewAutoMap(func(types.ComponentID) *callbackList[ComponentCallback] {
		return &callbackList[ComponentCallback]{}
	})
	w.tagAdded = storage.NewAutoMap(func(types.Tag) *callbackList[ComponentCallback] {
		return &callbackList[ComponentCallback]{}
	})
	w.tagRemoved = storage.NewAutoMap(func(types.Tag) *callbackList[ComponentCallback] {
		return &callbackList[ComponentCallback]{}
	})

	for _, opt := range opts {
		opt.worldOption(w)
	}

	w.entities.Add(types.SingletonID, struct{}{})
	w.nextID = types.SingletonID + 1

	return w
}

func newLogger(cfg WorldConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).
		With().Timestamp().Str("namespace", cfg.Namespace).Logger()
}

// Namespace returns the world's namespace.
func (w *World) Namespace() string {
	return w.namespace
}

// IsActive reports whether the world is between Startup and Shutdown.
func (w *World) IsActive() bool {
	return w.active
}

// CreateEntity allocates the next entity id, registers it in the live set and
// fires the entity-created callbacks. It always succeeds.
func (w *World) CreateEntity() types.EntityID {
	id := w.nextID
	w.nextID++
	w.entities.Add(id, struct{}{})
	for _, entry := range w.entityCreated.entries {
		entry.fn(id)
	}
	return id
}

// CreateEntityWith creates an entity and adds each component in argument
// order.
func (w *World) CreateEntityWith(components ...types.Component) (types.EntityID, error) {
	id := w.CreateEntity()
	names := make([]string, 0, len(components))
	for _, c := range components {
		if err := w.AddComponent(id, c); err != nil {
			return id, err
		}
		names = append(names, c.Name())
	}
	ecslog.Entity(&w.Logger, zerolog.DebugLevel, id, names)
	return id, nil
}

// EntityExists reports whether e is in the live set.
func (w *World) EntityExists(e types.EntityID) bool {
	return w.entities.Has(e)
}

// RemoveEntity destroys e. Descendants are fully destroyed first: if e has a
// Relationship it is unparented, then every child is removed recursively
// before e's own removal callbacks fire. Afterwards every component type the
// world has ever seen is swept from e (absent types are no-ops) and e leaves
// the live set.
func (w *World) RemoveEntity(e types.EntityID) error {
	if !w.entities.Has(e) {
		return eris.Wrap(ErrEntityDoesNotExist, "remove entity")
	}

	if rel, ok := w.relationshipOf(e); ok {
		if parent, hasParent := rel.ParentID(); hasParent {
			if err := w.Unparent(parent, e); err != nil {
				return err
			}
		}
		// Materialize the child list: RemoveEntity mutates the child set.
		children := append([]types.EntityID(nil), rel.Children()...)
		for _, child := range children {
			if err := w.RemoveEntity(child); err != nil {
				return err
			}
		}
	}

	for _, entry := range w.entityRemoved.entries {
		entry.fn(e)
	}

	for id := 0; id < w.registry.count(); id++ {
		w.removeComponentByID(e, types.ComponentID(id))
	}

	w.entities.Remove(e)
	return nil
}

// OnEntityCreated registers fn to fire whenever an entity is created. It
// returns an unsubscribe closure. Callbacks fire in registration order.
func (w *World) OnEntityCreated(fn EntityCallback) func() {
	return w.entityCreated.add(fn)
}

// OnEntityRemoved registers fn to fire whenever an entity is removed (after
// its descendants are destroyed, before its components are swept).
func (w *World) OnEntityRemoved(fn EntityCallback) func() {
	return w.entityRemoved.add(fn)
}

// OnComponentAddedNamed registers fn to fire whenever a component with the
// given name is added to any entity.
func (w *World) OnComponentAddedNamed(name string, fn ComponentCallback) func() {
	return w.componentAdded.Get(w.registry.registerName(name)).add(fn)
}

// OnComponentRemovedNamed registers fn to fire whenever a component with the
// given name is removed from any entity.
func (w *World) OnComponentRemovedNamed(name string, fn ComponentCallback) func() {
	return w.componentRemoved.Get(w.registry.registerName(name)).add(fn)
}

// OnTagAdded registers fn to fire whenever a component belonging to tag is
// added to any entity. It fires once per (component, tag) pair.
func (w *World) OnTagAdded(tag types.Tag, fn ComponentCallback) func() {
	return w.tagAdded.Get(tag).add(fn)
}

// OnTagRemoved registers fn to fire whenever a component belonging to tag is
// removed from any entity.
func (w *World) OnTagRemoved(tag types.Tag, fn ComponentCallback) func() {
	return w.tagRemoved.Get(tag).add(fn)
}

// SendEvent synchronously notifies every listener registered for t on the
// world's event bus.
func (w *World) SendEvent(t events.Type, payload any) {
	w.events.Notify(t, payload)
}

// ReceiveEvent subscribes l to events of type t and returns an unsubscribe
// closure.
func (w *World) ReceiveEvent(t events.Type, l events.Listener) func() {
	return w.events.Register(t, l)
}

// Startup activates the world and starts every registered system in
// registration order. Calling Startup on an active world logs an error and
// does nothing.
func (w *World) Startup() {
	if w.active {
		w.Logger.Error().Msg("startup called on an active world")
		return
	}
	w.active = true
	ecslog.World(&w.Logger, w, zerolog.InfoLevel, "world started")
	for _, sys := range w.systems.order {
		sys.base().start(sys)
	}
}

// Update runs one tick: every registered system's update hook, in registration
// order. Calling Update on an inactive world logs an error and does nothing.
func (w *World) Update(dt time.Duration) {
	if !w.active {
		w.Logger.Error().Msg("update called on an inactive world")
		return
	}
	for _, sys := range w.systems.order {
		sys.base().update(sys, dt)
	}
}

// Shutdown deactivates the world and stops every registered system in
// registration order. Calling Shutdown on an inactive world logs an error and
// does nothing.
func (w *World) Shutdown() {
	if !w.active {
		w.Logger.Error().Msg("shutdown called on an inactive world")
		return
	}
	w.active = false
	for _, sys := range w.systems.order {
		sys.base().stop(sys)
	}
	w.Logger.Info().Msg("world shut down")
}

// RegisteredComponents returns the names of every component type the world has
// seen, in registration order.
func (w *World) RegisteredComponents() []string {
	return append([]string(nil), w.registry.names...)
}

// RegisteredSystems returns the type names of every registered system, in
// registration order.
func (w *World) RegisteredSystems() []string {
	return w.systems.names()
}

func (w *World) notifyComponentAdded(id types.ComponentID, e types.EntityID, c types.Component) {
	if list, ok := w.componentAdded.Peek(id); ok {
		for _, entry := range list.entries {
			entry.fn(e, c)
		}
	}
}

func (w *World) notifyComponentRemoved(id types.ComponentID, e types.EntityID, c types.Component) {
	if list, ok := w.componentRemoved.Peek(id); ok {
		for _, entry := range list.entries {
			entry.fn(e, c)
		}
	}
}

func (w *World) notifyTagAdded(tag types.Tag, e types.EntityID, c types.Component) {
	if list, ok := w.tagAdded.Peek(tag); ok {
		for _, entry := range list.entries {
			entry.fn(e, c)
		}
	}
}

func (w *World) notifyTagRemoved(tag types.Tag, e types.EntityID, c types.Component) {
	if list, ok := w.tagRemoved.Peek(tag); ok {
		for _, entry := range list.entries {
			entry.fn(e, c)
		}
	}
}
