package orrery

import (
	"os"

	"github.com/rs/zerolog"
)

// WorldOption represents an option that can be used to augment how a World is
// constructed.
type WorldOption struct {
	worldOption func(*World)
}

// WithNamespace sets the World's namespace, overriding ORRERY_NAMESPACE. The
// namespace appears on every log line the world emits.
func WithNamespace(namespace string) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.namespace = namespace
			w.Logger = w.Logger.With().Str("namespace", namespace).Logger()
		},
	}
}

// WithLogger replaces the World's logger entirely.
func WithLogger(logger zerolog.Logger) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.Logger = logger
		},
	}
}

// WithPrettyLog switches the World's logger to a human-readable console
// writer. Intended for local development.
func WithPrettyLog() WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.Logger = w.Logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}
}

// WithStoreCapacity sets the initial capacity of every component store the
// world creates. The default is 0; stores grow as needed either way.
func WithStoreCapacity(capacity int) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.storeCapacity = capacity
		},
	}
}
