package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/dulcibelle-api/pkg/logger"
)

const csrfContextKey = "csrf"

// AppOptions opciones de la aplicación Fiber.
type AppOptions struct {
	Name         string
	CSRFEnabled  bool
	CookieSecure bool
	DocsFile     string // swagger.json; si no existe no se monta /docs
	Log          *logger.Logger
}

// NewApp crea la app Fiber con el stack de middlewares y registra las rutas.
// Orden: recover, request id, access log, cabeceras de seguridad, CSRF.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	// Immutable: los valores del formulario se guardan tal cual en el almacén en memoria
	// y no pueden apuntar a buffers que fasthttp reutiliza entre peticiones.
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(SecurityHeaders())
	if opts.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:_csrf",
			CookieName:     "dulcibelle_csrf",
			CookieSameSite: "Lax",
			CookieHTTPOnly: true,
			CookieSecure:   opts.CookieSecure,
			Expiration:     2 * time.Hour,
			ContextKey:     csrfContextKey,
			ErrorHandler:   CSRFErrorHandler,
		}))
	}

	if opts.DocsFile != "" {
		if _, err := os.Stat(opts.DocsFile); err == nil {
			// Swagger UI: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.DocsFile,
				Path:     "docs",
				Title:    opts.Name + " API",
			}))
		} else {
			log.Warn().Str("file", opts.DocsFile).Msg("swagger.json no encontrado; /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})

	Router(app, deps)
	return app
}

// csrfToken token vigente para incluir en los formularios; vacío si CSRF está deshabilitado.
func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals(csrfContextKey).(string)
	return token
}
