package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/application/usecase"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/internal/domain/order"
)

// AdminOrderHandler panel de pedidos (requiere RequireAdmin).
type AdminOrderHandler struct {
	uc     *usecase.OrderAdminUseCase
	authUC *auth.AuthUseCase
}

// NewAdminOrderHandler construye el handler.
func NewAdminOrderHandler(uc *usecase.OrderAdminUseCase, authUC *auth.AuthUseCase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, authUC: authUC}
}

// Dashboard godoc
// @Summary      Listado de pedidos
// @Description  10 por página, más recientes primero. Una página posterior a la última es 404.
// @Tags         admin
// @Produce      json
// @Param        page  query     int  false  "Página (por defecto 1)"
// @Success      200   {object}  dto.PageView
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/dashboard [get]
func (h *AdminOrderHandler) Dashboard(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	orders, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	admin, err := h.currentAdmin(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.PageView{
		Page:    "admin_dashboard",
		Flashes: PopFlashes(c),
		Orders:  orders,
		Admin:   admin,
	})
}

// Detail godoc
// @Summary      Detalle de un pedido
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "ID del pedido"
// @Success      200  {object}  dto.PageView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/commande/{id} [get]
func (h *AdminOrderHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	o, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PageView{
		Page:      "admin_commande_detail",
		Flashes:   PopFlashes(c),
		CSRFToken: csrfToken(c),
		Order:     o,
		Statuses:  order.Statuses(),
	})
}

// ChangeStatus godoc
// @Summary      Cambiar estado de un pedido
// @Description  Estados: pending, shipped, cancelled. Flash + 302 al detalle.
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        id      path      int     true  "ID del pedido"
// @Param        statut  formData  string  true  "Nuevo estado"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/commande/{id}/statut [post]
func (h *AdminOrderHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		in.Status = ""
	}
	detail := "/admin/commande/" + strconv.FormatInt(id, 10)

	_, err = h.uc.ChangeStatus(c.UserContext(), id, in.Status)
	switch {
	case err == nil:
		AddFlash(c, FlashSuccess, "Estado actualizado.")
	case errors.Is(err, domain.ErrInvalidStatus):
		AddFlash(c, FlashDanger, "Estado inválido.")
	default:
		return err
	}
	return c.Redirect(detail, fiber.StatusFound)
}

// Receipt godoc
// @Summary      Descargar recibo PDF
// @Tags         admin
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/commande/{id}/recibo [get]
func (h *AdminOrderHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	data, filename, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func (h *AdminOrderHandler) currentAdmin(c *fiber.Ctx) (*dto.AdminResponse, error) {
	sess := GetSession(c)
	if sess == nil || h.authUC == nil {
		return nil, nil
	}
	admin, err := h.authUC.CurrentAdmin(c.UserContext(), sess.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		// el admin fue eliminado después de emitir el token
		return &dto.AdminResponse{ID: sess.AdminID, Username: sess.Username}, nil
	}
	return admin, nil
}
