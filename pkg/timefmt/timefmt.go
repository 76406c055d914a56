// Package timefmt interpreta las fechas que devuelve la API de Eme Mar y las
// presenta con el corrimiento horario configurado.
package timefmt

import (
	"strings"
	"time"
)

// DisplayLayout formato de salida: "2006-01-02 15:04".
const DisplayLayout = "2006-01-02 15:04"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse interpreta una fecha del servidor. Acepta ISO 8601 con o sin zona y la forma con espacio.
// Las fechas sin zona se toman como UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), true
		}
	}
	// "2024-05-10 15:30:00Z" y variantes con espacio y zona
	if strings.Contains(s, " ") {
		if t, err := time.Parse(time.RFC3339Nano, strings.Replace(s, " ", "T", 1)); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Display aplica el offset y formatea. Si la fecha no se puede interpretar se devuelve tal cual.
func Display(s string, offset time.Duration) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Add(offset).Format(DisplayLayout)
}
