package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "https://server-eme-mar.onrender.com", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, -5*time.Hour, cfg.API.DisplayOffset())
	assert.Equal(t, 4*time.Second, cfg.Notify.Timeout())
	assert.Equal(t, 800, cfg.Media.PhotoMaxPx)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_EnvOverrides(t *testing.T) {
	v := viper.New()
	v.Set("EMEMAR_API_URL", "http://localhost:3000/")
	v.Set("HTTP_PORT", "9090")
	v.Set("DISPLAY_OFFSET_HOURS", "0")
	v.Set("API_TIMEOUT_SECONDS", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL, "se quita la barra final")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Duration(0), cfg.API.DisplayOffset())
	assert.Equal(t, 15, cfg.API.TimeoutSeconds, "un entero inválido vuelve al valor por defecto")
}

func TestValidate_RequiereSecretYHash(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "secret"
	assert.Error(t, cfg.Validate())

	cfg.Auth.OperatorPasswordHash = "$2a$10$hash"
	assert.NoError(t, cfg.Validate())
}

func TestFromViper_BaseURLVacio(t *testing.T) {
	v := viper.New()
	v.Set("EMEMAR_API_URL", "")
	_, err := fromViper(v)
	assert.Error(t, err)
}
