package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para admins.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un admin con su hash. ErrDuplicate si el username ya existe.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`,
		a.Username, a.PasswordHash,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername obtiene un admin por username. Nil si no existe.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return r.findOne(ctx, `SELECT id, username, password_hash FROM admins WHERE username = $1`, username)
}

// GetByID obtiene un admin por ID. Nil si no existe.
func (r *AdminRepo) GetByID(ctx context.Context, id int64) (*entity.Admin, error) {
	return r.findOne(ctx, `SELECT id, username, password_hash FROM admins WHERE id = $1`, id)
}

func (r *AdminRepo) findOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
