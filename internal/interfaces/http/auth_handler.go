package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
)

// AuthHandler login y logout del panel.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// LoginPage godoc
// @Summary      Formulario de acceso al panel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Router       /admin/login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageView{
		Page:      "admin_login",
		Flashes:   PopFlashes(c),
		CSRFToken: csrfToken(c),
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Éxito: cookie de sesión + 302 a /admin/dashboard. Fallo: flash + 302 a /admin/login.
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Usuario"
// @Param        password  formData  string  true  "Contraseña"
// @Success      302
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		AddFlash(c, FlashDanger, "Credenciales incorrectas.")
		return c.Redirect(loginPath, fiber.StatusFound)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			AddFlash(c, FlashDanger, "Credenciales incorrectas.")
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return err
	}
	h.cookie.set(c, out.Token, out.ExpiresAt)
	AddFlash(c, FlashSuccess, "Sesión iniciada.")
	return c.Redirect(dashboardPath, fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         admin
// @Success      302
// @Router       /admin/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookie.revoke(c)
	h.cookie.clear(c)
	AddFlash(c, FlashInfo, "Sesión cerrada.")
	return c.Redirect(loginPath, fiber.StatusFound)
}
