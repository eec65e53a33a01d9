package dto

// PageResponse metadatos de paginación del panel (equivalente al paginador del listado).
type PageResponse struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// NewPageResponse calcula el número de páginas y los indicadores prev/next.
func NewPageResponse(page, perPage, total int) PageResponse {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return PageResponse{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlashMessage mensaje de una sola lectura mostrado en la siguiente página.
type FlashMessage struct {
	Category string `json:"category"` // success, danger, info
	Message  string `json:"message"`
}
