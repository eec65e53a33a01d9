package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/usecase"
)

// StorefrontHandler páginas públicas de la tienda.
type StorefrontHandler struct {
	uc *usecase.StorefrontUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(uc *usecase.StorefrontUseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// Index godoc
// @Summary      Página de inicio
// @Tags         tienda
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Router       / [get]
func (h *StorefrontHandler) Index(c *fiber.Ctx) error {
	return h.productPage(c, "landing", "index")
}

// Product godoc
// @Summary      Ficha del producto
// @Tags         tienda
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Router       /produit [get]
func (h *StorefrontHandler) Product(c *fiber.Ctx) error {
	return h.productPage(c, "produit", "produit")
}

// OrderForm godoc
// @Summary      Formulario de pedido
// @Description  Incluye el token CSRF que debe enviarse como _csrf.
// @Tags         tienda
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Router       /commander [get]
func (h *StorefrontHandler) OrderForm(c *fiber.Ctx) error {
	return h.productPage(c, "commande", "commander")
}

func (h *StorefrontHandler) productPage(c *fiber.Ctx, page, active string) error {
	product, err := h.uc.GetProduct(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.PageView{
		Page:       page,
		ActivePage: active,
		Flashes:    PopFlashes(c),
		CSRFToken:  csrfToken(c),
		Product:    product,
	})
}

// Confirmation godoc
// @Summary      Confirmación de pedido
// @Tags         tienda
// @Produce      json
// @Param        id   path      int  true  "ID del pedido"
// @Success      200  {object}  dto.PageView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /confirmation/{id} [get]
func (h *StorefrontHandler) Confirmation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	order, err := h.uc.GetOrder(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PageView{
		Page:    "confirmation",
		Flashes: PopFlashes(c),
		Order:   order,
	})
}

// StaticPage páginas de contenido fijo (historia, contacto, legales, CGV, FAQ).
func StaticPage(page, active, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.PageView{
			Page:       page,
			ActivePage: active,
			Title:      title,
			Flashes:    PopFlashes(c),
		})
	}
}
