package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
)

// Categorías de flash.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

const (
	flashCookieName = "dulcibelle_flash"
	localFlashes    = "flashes_out"
)

// AddFlash encola un mensaje para la siguiente página. Varios mensajes en la misma petición se acumulan.
func AddFlash(c *fiber.Ctx, category, message string) {
	pending, _ := c.Locals(localFlashes).([]dto.FlashMessage)
	pending = append(pending, dto.FlashMessage{Category: category, Message: message})
	c.Locals(localFlashes, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PopFlashes lee los mensajes pendientes y borra la cookie (lectura única).
func PopFlashes(c *fiber.Ctx) []dto.FlashMessage {
	out := []dto.FlashMessage{}
	value := c.Cookies(flashCookieName)
	if value == "" {
		return out
	}
	expireCookie(c, flashCookieName)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return out
	}
	var msgs []dto.FlashMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return out
	}
	return append(out, msgs...)
}

// expireCookie borra una cookie con el mismo Path con que se creó.
func expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
