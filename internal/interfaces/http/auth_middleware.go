package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/pkg/jwt"
)

// Locals keys para la sesión del admin en Fiber.
const (
	LocalAdminID  = "admin_id"
	LocalSession  = "admin_session"
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

// SessionCookie configuración de la cookie que transporta el token de sesión.
type SessionCookie struct {
	Name    string
	Secret  string
	Secure  bool
	Revoked *jwt.RevocationList // sesiones cerradas con logout; nil = sin revocación en servidor
}

// DefaultSessionCookieName nombre de la cookie de sesión del panel.
const DefaultSessionCookieName = "dulcibelle_session"

func (s SessionCookie) name() string {
	if s.Name == "" {
		return DefaultSessionCookieName
	}
	return s.Name
}

// set guarda el token firmado en una cookie HTTP-only.
func (s SessionCookie) set(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name(),
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s SessionCookie) clear(c *fiber.Ctx) {
	expireCookie(c, s.name())
}

// session devuelve la sesión válida de la petición, o nil.
func (s SessionCookie) session(c *fiber.Ctx) *jwt.Session {
	token := c.Cookies(s.name())
	if token == "" {
		return nil
	}
	sess, err := jwt.Parse(s.Secret, token)
	if err != nil {
		return nil
	}
	if s.Revoked != nil && s.Revoked.IsRevoked(sess) {
		return nil
	}
	return sess
}

// revoke invalida en servidor la sesión de la petición, si la hay.
func (s SessionCookie) revoke(c *fiber.Ctx) {
	if s.Revoked == nil {
		return
	}
	s.Revoked.Revoke(s.session(c))
}

// RequireAdmin valida la cookie de sesión; sin sesión válida redirige al login con un flash.
// Con sesión deja AdminID y la sesión en c.Locals.
func RequireAdmin(cookie SessionCookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := cookie.session(c)
		if sess == nil {
			AddFlash(c, FlashDanger, "Inicie sesión para acceder a esta página.")
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		c.Locals(LocalAdminID, sess.AdminID)
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetAdminID devuelve el AdminID del contexto (después de RequireAdmin).
func GetAdminID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalAdminID).(int64)
	return id
}

// GetSession devuelve la sesión del contexto (después de RequireAdmin).
func GetSession(c *fiber.Ctx) *jwt.Session {
	s, _ := c.Locals(LocalSession).(*jwt.Session)
	return s
}
