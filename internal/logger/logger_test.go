package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_SetsRoleAndCallerFields(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Должен быть no-op: никакой паники и никакого вывода
	log.Info().Msg("discarded")
	log.Error().Msg("discarded too")
}

func TestGetChildLogger_ReturnsIndependentLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}
