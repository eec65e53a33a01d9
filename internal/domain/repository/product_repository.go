package repository

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La tienda vende un solo producto: GetStorefront devuelve la primera fila.
type ProductRepository interface {
	GetStorefront(ctx context.Context) (*entity.Product, error)
	// GetStorefrontForUpdate bloquea la fila hasta el fin de la transacción.
	GetStorefrontForUpdate(ctx context.Context) (*entity.Product, error)
	// DecrementStock resta qty solo si stock >= qty; si no, devuelve domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, productID int64, qty int) error
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, product *entity.Product) error
}
