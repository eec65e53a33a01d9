package ordering

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback: ni stock descontado sin pedido ni pedido sin número.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// OrderPlacedHook se invoca después del commit de un pedido.
// No devuelve error: un fallo del hook nunca deshace ni invalida el pedido.
type OrderPlacedHook interface {
	OrderPlaced(ctx context.Context, order *entity.Order, product *entity.Product)
}
