package jwt

import (
	"sync"
	"time"
)

// RevocationList guarda los jti de sesiones cerradas hasta que su token expira.
// Vive en memoria del proceso: un reinicio la vacía y los tokens vuelven a valer hasta su exp.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewRevocationList crea una lista vacía.
func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke invalida la sesión hasta expiresAt. Aprovecha para purgar las ya expiradas.
func (r *RevocationList) Revoke(s *Session) {
	if s == nil || s.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
		}
	}
	r.revoked[s.ID] = s.ExpiresAt
}

// IsRevoked indica si la sesión fue cerrada.
func (r *RevocationList) IsRevoked(s *Session) bool {
	if s == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[s.ID]
	return ok
}

// Len número de sesiones revocadas aún vigentes.
func (r *RevocationList) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}
