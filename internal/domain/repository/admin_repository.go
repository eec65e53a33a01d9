package repository

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, admin *entity.Admin) error
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	GetByID(ctx context.Context, id int64) (*entity.Admin, error)
}
