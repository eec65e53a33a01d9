package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/order"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

// OrdersPerPage tamaño de página del panel.
const OrdersPerPage = 10

// OrderAdminUseCase operaciones del panel: listado, detalle, cambio de estado y recibo.
type OrderAdminUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	receipts    ports.ReceiptGenerator
}

// NewOrderAdminUseCase construye el caso de uso. receipts puede ser nil (sin descarga de recibo).
func NewOrderAdminUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	receipts ports.ReceiptGenerator,
) *OrderAdminUseCase {
	return &OrderAdminUseCase{orderRepo: orderRepo, productRepo: productRepo, receipts: receipts}
}

// List devuelve una página de pedidos, más recientes primero.
// page < 1 se trata como 1; una página posterior a la última (salvo la 1) es ErrNotFound.
func (uc *OrderAdminUseCase) List(ctx context.Context, page int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	total, err := uc.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("pedidos: contar: %w", err)
	}
	meta := dto.NewPageResponse(page, OrdersPerPage, total)
	if page > 1 && page > meta.Pages {
		return nil, domain.ErrNotFound
	}

	list, err := uc.orderRepo.List(ctx, OrdersPerPage, (page-1)*OrdersPerPage)
	if err != nil {
		return nil, fmt.Errorf("pedidos: listar: %w", err)
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Page: meta}, nil
}

// Get detalle de un pedido. ErrNotFound si no existe.
func (uc *OrderAdminUseCase) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToOrderResponse(o), nil
}

// ChangeStatus cambia el estado del pedido. Cualquier transición entre estados válidos está permitida.
//
// Retorna:
//   - domain.ErrNotFound      si el pedido no existe.
//   - domain.ErrInvalidStatus si el estado no es pending, shipped o cancelled; sin cambios.
func (uc *OrderAdminUseCase) ChangeStatus(ctx context.Context, id int64, status string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !order.IsValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return dto.ToOrderResponse(o), nil
}

// Receipt genera el PDF del pedido y su nombre de archivo.
func (uc *OrderAdminUseCase) Receipt(ctx context.Context, id int64) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("recibo: generador no configurado")
	}
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}
	p, err := uc.productRepo.GetStorefront(ctx)
	if err != nil {
		return nil, "", err
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.receipts.GenerateOrderReceipt(ctx, o, p)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return data, ports.ReceiptFilename(o), nil
}
