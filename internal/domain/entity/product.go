package entity

import "github.com/shopspring/decimal"

// Valores del producto sembrado al arrancar si la tabla está vacía.
const (
	DefaultProductName  = "Sérum visage anti-tâches"
	DefaultProductStock = 100
)

// DefaultProductPrice precio del producto sembrado.
var DefaultProductPrice = decimal.NewFromInt(429)

// Product el único artículo a la venta. Stock nunca es negativo y solo lo descuenta un pedido confirmado.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description string
	Image       string // ruta relativa, ej. images/serum.jpg
	Ingredients string
	Usage       string
}
