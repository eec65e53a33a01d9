package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/ordering"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
)

const orderFormPath = "/commander"

// OrderHandler envío del formulario de pedido.
type OrderHandler struct {
	uc *ordering.PlaceOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *ordering.PlaceOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// PlaceOrder godoc
// @Summary      Registrar pedido
// @Description  Errores de validación o de stock: flashes + 302 a /commander. Éxito: 302 a /confirmation/{id}.
// @Tags         tienda
// @Accept       x-www-form-urlencoded
// @Param        nom        formData  string  true  "Apellido"
// @Param        prenom     formData  string  true  "Nombre"
// @Param        adresse    formData  string  true  "Dirección"
// @Param        telephone  formData  string  true  "Teléfono"
// @Param        email      formData  string  true  "Email"
// @Param        quantite   formData  string  true  "Cantidad (1-10)"
// @Param        _csrf      formData  string  false "Token CSRF"
// @Success      302
// @Router       /commander [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		AddFlash(c, FlashDanger, "Formulario inválido.")
		return c.Redirect(orderFormPath, fiber.StatusFound)
	}

	order, err := h.uc.PlaceOrder(c.UserContext(), in)
	if err != nil {
		if verrs, ok := domain.AsValidation(err); ok {
			for _, msg := range verrs.Messages() {
				AddFlash(c, FlashDanger, msg)
			}
			return c.Redirect(orderFormPath, fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			AddFlash(c, FlashDanger, "Lo sentimos, stock insuficiente.")
			return c.Redirect(orderFormPath, fiber.StatusFound)
		}
		return err
	}

	AddFlash(c, FlashSuccess, "¡Pedido registrado con éxito!")
	return c.Redirect("/confirmation/"+strconv.FormatInt(order.ID, 10), fiber.StatusFound)
}
