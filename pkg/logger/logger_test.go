package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_AgregaCampoService(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Env: "production", Service: "api"}, &buf)

	log.Info().Msg("arranque")

	assert.Contains(t, buf.String(), `"service":"api"`)
	assert.Contains(t, buf.String(), `"message":"arranque"`)
}

func TestLevelFor_DefaultSegunEnv(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, levelFor(Config{Env: "development"}))
	assert.Equal(t, zerolog.InfoLevel, levelFor(Config{Env: "production"}))
	assert.Equal(t, zerolog.WarnLevel, levelFor(Config{Env: "production", Level: "warn"}))
	assert.Equal(t, zerolog.InfoLevel, levelFor(Config{Level: "inexistente"}))
}

func TestNewWithWriter_RespetaElNivel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Env: "production", Level: "error", Service: "api"}, &buf)

	log.Info().Msg("no debería salir")
	assert.Empty(t, buf.String())

	log.Error().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}
