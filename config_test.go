package orrery_test

import (
	"testing"

	"github.com/orrery-engine/orrery"
	"github.com/orrery-engine/orrery/assert"
)

func TestGetWorldConfigDefaults(t *testing.T) {
	got := orrery.GetWorldConfig()

	assert.Equal(t, got, orrery.WorldConfig{
		Namespace: "world",
		LogLevel:  "info",
		LogPretty: false,
	})
}

func TestGetWorldConfigFromEnvironment(t *testing.T) {
	t.Setenv("ORRERY_NAMESPACE", "arena-1")
	t.Setenv("ORRERY_LOG_LEVEL", "debug")
	t.Setenv("ORRERY_LOG_PRETTY", "true")

	got := orrery.GetWorldConfig()

	assert.Equal(t, got, orrery.WorldConfig{
		Namespace: "arena-1",
		LogLevel:  "debug",
		LogPretty: true,
	})
}
