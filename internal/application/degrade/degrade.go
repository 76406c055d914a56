// Package degrade convierte fallos de lectura de la API remota en listados vacíos.
package degrade

import "github.com/rs/zerolog"

// List devuelve items si err es nil; si no, registra un warn y devuelve lista vacía con degraded=true.
func List[T any](log zerolog.Logger, what string, items []T, err error) ([]T, bool) {
	if err != nil {
		log.Warn().Err(err).Str("resource", what).Msg("lectura degradada: se muestra vacío")
		return []T{}, true
	}
	if items == nil {
		items = []T{}
	}
	return items, false
}
