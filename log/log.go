// Package log loads orrery's registries into zerolog events.
package log

import (
	"github.com/rs/zerolog"

	"github.com/orrery-engine/orrery/types"
)

// Loggable is the view of a World that this package knows how to render.
type Loggable interface {
	RegisteredComponents() []string
	RegisteredSystems() []string
}

func loadComponentsToEvent(event *zerolog.Event, target Loggable) *zerolog.Event {
	components := target.RegisteredComponents()
	event.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, name := range components {
		arrayLogger = arrayLogger.Str(name)
	}
	return event.Array("components", arrayLogger)
}

func loadSystemsToEvent(event *zerolog.Event, target Loggable) *zerolog.Event {
	systems := target.RegisteredSystems()
	event.Int("total_systems", len(systems))
	arrayLogger := zerolog.Arr()
	for _, name := range systems {
		arrayLogger = arrayLogger.Str(name)
	}
	return event.Array("systems", arrayLogger)
}

// Components logs the component types registered with target.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadComponentsToEvent(event, target)
	event.Send()
}

// Systems logs the systems registered with target.
func Systems(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadSystemsToEvent(event, target)
	event.Send()
}

// Entity logs an entity id together with its component names.
func Entity(logger *zerolog.Logger, level zerolog.Level, id types.EntityID, components []string) {
	event := logger.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for _, name := range components {
		arrayLogger = arrayLogger.Str(name)
	}
	event.Array("components", arrayLogger)
	event.Uint64("entity_id", uint64(id))
	event.Send()
}

// World logs everything about the world: registered components and systems.
func World(logger *zerolog.Logger, target Loggable, level zerolog.Level, message string) {
	event := logger.WithLevel(level)
	event = loadComponentsToEvent(event, target)
	event = loadSystemsToEvent(event, target)
	event.Msg(message)
}

// CreateSystemLogger returns a sub-logger carrying {"system": systemName}.
func CreateSystemLogger(logger *zerolog.Logger, systemName string) *zerolog.Logger {
	newLogger := logger.With().Str("system", systemName).Logger()
	return &newLogger
}
