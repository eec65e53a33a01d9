package dto

import "github.com/jhoicas/dulcibelle-api/internal/domain/entity"

// ToProductResponse convierte la entidad en su salida HTTP.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
		Description: p.Description,
		Image:       p.Image,
		Ingredients: p.Ingredients,
		Usage:       p.Usage,
	}
}

// ToOrderResponse convierte la entidad en su salida HTTP.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:        o.ID,
		Number:    o.Number,
		LastName:  o.LastName,
		FirstName: o.FirstName,
		Address:   o.Address,
		Phone:     o.Phone,
		Email:     o.Email,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
