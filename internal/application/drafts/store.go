// Package drafts almacén en memoria de borradores por operador con vencimiento por inactividad.
package drafts

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ememar-console/internal/domain"
)

// DefaultTTL inactividad tras la cual se descarta un borrador.
const DefaultTTL = 2 * time.Hour

// MsgDraftNotFound mensaje cuando el borrador no existe o venció.
const MsgDraftNotFound = "El borrador no existe o venció"

type entry[T any] struct {
	owner     string
	value     T
	touchedAt time.Time
}

// Store borradores de tipo T. Cada acceso renueva el vencimiento.
type Store[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]*entry[T]
}

// NewStore construye el almacén. ttl <= 0 usa DefaultTTL.
func NewStore[T any](ttl time.Duration) *Store[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store[T]{ttl: ttl, now: time.Now, items: make(map[string]*entry[T])}
}

// SetClock reemplaza el reloj (tests).
func (s *Store[T]) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Create guarda un borrador nuevo y devuelve su id y vencimiento.
func (s *Store[T]) Create(owner string, value T) (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	id := uuid.NewString()
	now := s.now()
	s.items[id] = &entry[T]{owner: owner, value: value, touchedAt: now}
	return id, now.Add(s.ttl)
}

// Get devuelve una copia del borrador.
func (s *Store[T]) Get(owner, id string) (T, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(owner, id)
	if err != nil {
		var zero T
		return zero, time.Time{}, err
	}
	e.touchedAt = s.now()
	return e.value, e.touchedAt.Add(s.ttl), nil
}

// Update aplica fn sobre el borrador bajo el lock. Si fn falla el borrador no cambia.
func (s *Store[T]) Update(owner, id string, fn func(*T) error) (T, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, err := s.lookup(owner, id)
	if err != nil {
		return zero, time.Time{}, err
	}
	next := e.value
	if err := fn(&next); err != nil {
		return zero, time.Time{}, err
	}
	e.value = next
	e.touchedAt = s.now()
	return e.value, e.touchedAt.Add(s.ttl), nil
}

// Delete descarta el borrador. Devuelve false si no existía.
func (s *Store[T]) Delete(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookup(owner, id); err != nil {
		return false
	}
	delete(s.items, id)
	return true
}

// Len borradores vivos.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	return len(s.items)
}

// lookup requiere s.mu.
func (s *Store[T]) lookup(owner, id string) (*entry[T], error) {
	e, ok := s.items[id]
	if !ok || e.owner != owner {
		return nil, domain.NewValidation(domain.CodeNotFound, MsgDraftNotFound)
	}
	if s.now().Sub(e.touchedAt) >= s.ttl {
		delete(s.items, id)
		return nil, domain.NewValidation(domain.CodeNotFound, MsgDraftNotFound)
	}
	return e, nil
}

// sweep elimina los vencidos. Requiere s.mu.
func (s *Store[T]) sweep() {
	now := s.now()
	for id, e := range s.items {
		if now.Sub(e.touchedAt) >= s.ttl {
			delete(s.items, id)
		}
	}
}
