package entity

// Admin usuario con acceso al panel. Se aprovisiona fuera de banda (cmd/seed_admin).
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt; nunca se persiste el texto plano
}
