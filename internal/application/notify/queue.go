// Package notify cola de avisos por operador. Reemplaza las banderas globales de alerta:
// cada aviso tiene id, vence solo y se puede descartar explícitamente.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ememar-console/internal/application/dto"
)

// Tipos de aviso.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeWarning = "warning"
	TypeInfo    = "info"
)

// DefaultCapacity avisos vivos por operador; al superarla se descarta el más viejo.
const DefaultCapacity = 20

type notification struct {
	id        string
	kind      string
	message   string
	createdAt time.Time
	expiresAt time.Time
}

// Hub mantiene una cola por operador.
type Hub struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	now      func() time.Time
	queues   map[string][]notification
}

// NewHub construye el hub. ttl <= 0 usa 4s.
func NewHub(ttl time.Duration) *Hub {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Hub{
		ttl:      ttl,
		capacity: DefaultCapacity,
		now:      time.Now,
		queues:   make(map[string][]notification),
	}
}

// Push agrega un aviso y devuelve su id.
func (h *Hub) Push(operatorID, kind, message string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	q := h.live(operatorID, now)
	n := notification{
		id:        uuid.NewString(),
		kind:      kind,
		message:   message,
		createdAt: now,
		expiresAt: now.Add(h.ttl),
	}
	q = append(q, n)
	if len(q) > h.capacity {
		q = q[len(q)-h.capacity:]
	}
	h.queues[operatorID] = q
	return n.id
}

// Success atajo para avisos de éxito.
func (h *Hub) Success(operatorID, message string) string {
	return h.Push(operatorID, TypeSuccess, message)
}

// Error atajo para avisos de error.
func (h *Hub) Error(operatorID, message string) string {
	return h.Push(operatorID, TypeError, message)
}

// List devuelve los avisos vivos, del más viejo al más nuevo.
func (h *Hub) List(operatorID string) []dto.NotificationResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	q := h.live(operatorID, h.now())
	h.queues[operatorID] = q

	out := make([]dto.NotificationResponse, 0, len(q))
	for _, n := range q {
		out = append(out, dto.NotificationResponse{
			ID: n.id, Type: n.kind, Message: n.message, CreatedAt: n.createdAt, ExpiresAt: n.expiresAt,
		})
	}
	return out
}

// Dismiss descarta un aviso. Devuelve false si no existía o ya venció.
func (h *Hub) Dismiss(operatorID, id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	q := h.live(operatorID, h.now())
	for i, n := range q {
		if n.id == id {
			h.queues[operatorID] = append(q[:i], q[i+1:]...)
			return true
		}
	}
	h.queues[operatorID] = q
	return false
}

// live filtra los vencidos. Requiere h.mu.
func (h *Hub) live(operatorID string, now time.Time) []notification {
	q := h.queues[operatorID]
	out := q[:0]
	for _, n := range q {
		if now.Before(n.expiresAt) {
			out = append(out, n)
		}
	}
	return out
}
