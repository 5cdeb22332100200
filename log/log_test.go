package log_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/orrery-engine/orrery/assert"
	"github.com/orrery-engine/orrery/log"
	"github.com/orrery-engine/orrery/types"
)

type stubWorld struct {
	components []string
	systems    []string
}

func (s stubWorld) RegisteredComponents() []string { return s.components }

func (s stubWorld) RegisteredSystems() []string { return s.systems }

func TestWorldLogsComponentsAndSystems(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	target := stubWorld{
		components: []string{"position", "velocity"},
		systems:    []string{"movementSystem"},
	}

	log.World(&logger, target, zerolog.InfoLevel, "world ready")

	want := `{"level":"info","total_components":2,"components":["position","velocity"],` +
		`"total_systems":1,"systems":["movementSystem"],"message":"world ready"}
`
	assert.Equal(t, buf.String(), want)
}

func TestEntityLogsIDWithComponents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	log.Entity(&logger, zerolog.DebugLevel, types.EntityID(42), []string{"health"})

	want := `{"level":"debug","components":["health"],"entity_id":42}
`
	assert.Equal(t, buf.String(), want)
}

func TestCreateSystemLoggerTagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	sysLogger := log.CreateSystemLogger(&logger, "movementSystem")
	sysLogger.Info().Msg("tick")

	assert.Contains(t, buf.String(), `"system":"movementSystem"`)
}
