package dto

// PageView payload de una página HTML; el render lo hace el front.
// Solo se completan los campos de la página pedida.
type PageView struct {
	Page       string             `json:"page"`
	ActivePage string             `json:"active_page,omitempty"`
	Title      string             `json:"title,omitempty"`
	Flashes    []FlashMessage     `json:"flashes"`
	CSRFToken  string             `json:"csrf_token,omitempty"`
	Product    *ProductResponse   `json:"product,omitempty"`
	Order      *OrderResponse     `json:"order,omitempty"`
	Orders     *OrderListResponse `json:"orders,omitempty"`
	Admin      *AdminResponse     `json:"admin,omitempty"`
	Statuses   []string           `json:"statuses,omitempty"`
}
