package dto

import "github.com/shopspring/decimal"

// ProductResponse salida del producto de la tienda.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"in_stock"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Ingredients string          `json:"ingredients"`
	Usage       string          `json:"usage"`
}
