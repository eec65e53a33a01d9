package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
)

// StorefrontUseCase lecturas públicas de la tienda: producto y confirmación de pedido.
type StorefrontUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewStorefrontUseCase construye el caso de uso.
func NewStorefrontUseCase(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *StorefrontUseCase {
	return &StorefrontUseCase{productRepo: productRepo, orderRepo: orderRepo}
}

// EnsureProduct siembra el producto por defecto si la tabla está vacía. Devuelve true si lo creó.
func (uc *StorefrontUseCase) EnsureProduct(ctx context.Context) (bool, error) {
	n, err := uc.productRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("storefront: contar productos: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	p := &entity.Product{
		Name:  entity.DefaultProductName,
		Price: entity.DefaultProductPrice,
		Stock: entity.DefaultProductStock,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return false, fmt.Errorf("storefront: sembrar producto: %w", err)
	}
	return true, nil
}

// GetProduct devuelve el producto de la tienda. ErrNotFound si no fue sembrado.
func (uc *StorefrontUseCase) GetProduct(ctx context.Context) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetStorefront(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(p), nil
}

// GetOrder datos de la página de confirmación. ErrNotFound si el id no existe.
func (uc *StorefrontUseCase) GetOrder(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToOrderResponse(o), nil
}
