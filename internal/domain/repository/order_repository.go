package repository

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// Create inserta el pedido y asigna order.ID con el id generado.
	Create(ctx context.Context, order *entity.Order) error
	SetNumber(ctx context.Context, id int64, number string) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// List ordena por fecha de creación descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
	// UpdateStatus devuelve domain.ErrNotFound si el pedido no existe.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
