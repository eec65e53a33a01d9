package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationList_RevocaYPurga(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRevocationList()
	r.now = func() time.Time { return now }

	viejo := &Session{ID: "a", ExpiresAt: now.Add(time.Minute)}
	r.Revoke(viejo)
	assert.True(t, r.IsRevoked(viejo))
	assert.False(t, r.IsRevoked(&Session{ID: "b"}))

	now = now.Add(2 * time.Minute)
	r.Revoke(&Session{ID: "c", ExpiresAt: now.Add(time.Hour)})
	assert.Equal(t, 1, r.Len(), "la sesión expirada se purga")
}

func TestRevocationList_SinID(t *testing.T) {
	r := NewRevocationList()
	r.Revoke(nil)
	r.Revoke(&Session{})
	assert.Zero(t, r.Len())
	assert.False(t, r.IsRevoked(nil))
}
