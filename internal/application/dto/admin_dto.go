package dto

import "time"

// LoginRequest credenciales del formulario de acceso al panel.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AdminResponse salida de un admin (sin hash).
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse token de sesión firmado y su expiración.
type LoginResponse struct {
	Token     string        `json:"-"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     AdminResponse `json:"admin"`
}
