package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/dto"
	"github.com/jhoicas/dulcibelle-api/internal/domain"
	"github.com/jhoicas/dulcibelle-api/pkg/logger"
)

// ErrorHandler páginas de error 404/500 en JSON. Los 5xx se registran con el request id.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
		}

		switch {
		case code == fiber.StatusNotFound:
			return c.Status(code).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Página no encontrada."})
		case code >= fiber.StatusInternalServerError:
			log.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error interno")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor."})
		default:
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
	}
}

// CSRFErrorHandler token ausente o vencido: flash y vuelta a la página de origen.
func CSRFErrorHandler(c *fiber.Ctx, _ error) error {
	AddFlash(c, FlashDanger, "El formulario expiró o no es válido. Vuelva a intentarlo.")
	target := c.Get(fiber.HeaderReferer)
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusFound)
}

// paramID lee :id como entero positivo; cualquier otra cosa es 404.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return int64(id), nil
}
