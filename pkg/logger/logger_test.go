package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Str("sale_id", "7").Msg("abono registrado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abono registrado", entry["message"])
	assert.Equal(t, "7", entry["sale_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestNew_ServiceYComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "debug", Service: "ememar-console", Output: &buf})

	cl := l.Component("emeapi")
	cl.Debug().Msg("GET /clients")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ememar-console", entry["service"])
	assert.Equal(t, "emeapi", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNop_NoEscribe(t *testing.T) {
	l := Nop()
	l.Error().Msg("nada")
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
