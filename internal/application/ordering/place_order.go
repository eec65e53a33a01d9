package ordering

import (
	"context"
	"time"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/order"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
	"github.com/jhoicas/dulcibelle-api/pkg/logger"
)

// PlaceOrderUseCase valida el formulario, descuenta stock y crea el pedido numerado en una sola transacción.
type PlaceOrderUseCase struct {
	txRunner TxRunner
	hooks    []OrderPlacedHook
	log      *logger.Logger
	now      func() time.Time
}

// NewPlaceOrderUseCase construye el caso de uso. Los hooks corren en orden tras cada commit.
func NewPlaceOrderUseCase(txRunner TxRunner, log *logger.Logger, hooks ...OrderPlacedHook) *PlaceOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PlaceOrderUseCase{
		txRunner: txRunner,
		hooks:    hooks,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *PlaceOrderUseCase) WithClock(now func() time.Time) *PlaceOrderUseCase {
	uc.now = now
	return uc
}

// PlaceOrder registra un pedido.
//
// Retorna:
//   - domain.ValidationErrors     con todas las reglas violadas; sin efectos.
//   - domain.ErrInsufficientStock si stock < cantidad; sin efectos.
//   - domain.ErrNotFound          si no hay producto sembrado.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	qty, err := order.Validate(order.Form{
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var created *entity.Order
	var product *entity.Product

	err = uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// 1) Releer el producto con la fila bloqueada hasta el commit
		p, err := productRepo.GetStorefrontForUpdate(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Stock < qty {
			return domain.ErrInsufficientStock
		}

		// 2) Descuento condicionado (stock >= qty) por si otro pedido ganó la carrera
		if err := productRepo.DecrementStock(ctx, p.ID, qty); err != nil {
			return err
		}
		p.Stock -= qty

		// 3) Insertar el pedido para obtener su id
		o := &entity.Order{
			LastName:  in.LastName,
			FirstName: in.FirstName,
			Address:   in.Address,
			Phone:     in.Phone,
			Email:     in.Email,
			Quantity:  qty,
			CreatedAt: now.UTC(),
			Status:    entity.OrderStatusPending,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}

		// 4) Número visible a partir del id, una sola vez
		o.Number = order.FormatNumber(o.ID, now)
		if err := orderRepo.SetNumber(ctx, o.ID, o.Number); err != nil {
			return err
		}

		created = o
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("order_id", created.ID).
		Str("number", created.Number).
		Int("quantity", created.Quantity).
		Int("stock_left", product.Stock).
		Msg("pedido registrado")

	uc.runHooks(ctx, created, product)
	return dto.ToOrderResponse(created), nil
}

// runHooks aísla cada hook: un panic se registra y no llega al caller.
func (uc *PlaceOrderUseCase) runHooks(ctx context.Context, o *entity.Order, p *entity.Product) {
	for _, h := range uc.hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					uc.log.Error().Interface("panic", r).Int64("order_id", o.ID).Msg("hook post-commit")
				}
			}()
			h.OrderPlaced(ctx, o, p)
		}()
	}
}
