package dto

import "time"

// PlaceOrderRequest campos del formulario de pedido; la cantidad llega como texto.
// Los nombres de campo son los del formulario público (/commander).
type PlaceOrderRequest struct {
	LastName  string `json:"nom" form:"nom"`
	FirstName string `json:"prenom" form:"prenom"`
	Address   string `json:"adresse" form:"adresse"`
	Phone     string `json:"telephone" form:"telephone"`
	Email     string `json:"email" form:"email"`
	Quantity  string `json:"quantite" form:"quantite"`
}

// ChangeStatusRequest cambio de estado desde el panel.
type ChangeStatusRequest struct {
	Status string `json:"statut" form:"statut"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderListResponse página del panel de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
