package entity

import "time"

// Estados válidos de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order pedido de un cliente. Number se asigna una sola vez, dentro de la transacción que lo crea.
type Order struct {
	ID        int64
	LastName  string
	FirstName string
	Address   string
	Phone     string
	Email     string
	Quantity  int
	CreatedAt time.Time // UTC, inmutable
	Status    string
	Number    string // CMD-<año>-<id a 4 dígitos>
}
