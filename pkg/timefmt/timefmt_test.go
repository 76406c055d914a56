package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_AplicaOffset(t *testing.T) {
	offset := -5 * time.Hour

	assert.Equal(t, "2024-05-10 10:30", Display("2024-05-10 15:30:00", offset), "forma con espacio")
	assert.Equal(t, "2024-05-10 10:30", Display("2024-05-10T15:30:00.000Z", offset))
	assert.Equal(t, "2024-05-09 22:00", Display("2024-05-10T03:00:00", offset), "cruza de día")
}

func TestDisplay_SinOffset(t *testing.T) {
	assert.Equal(t, "2024-01-02 08:00", Display("2024-01-02T08:00:00Z", 0))
}

func TestDisplay_FechaInvalida(t *testing.T) {
	assert.Equal(t, "ayer", Display("ayer", -5*time.Hour))
	assert.Equal(t, "", Display("", -5*time.Hour))
}

func TestParse(t *testing.T) {
	got, ok := Parse("2024-05-10T15:30:00-05:00")
	assert.True(t, ok)
	assert.Equal(t, 20, got.Hour(), "se normaliza a UTC")

	_, ok = Parse("no-es-fecha")
	assert.False(t, ok)
}
