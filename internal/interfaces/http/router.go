package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/ordering"
	"github.com/jhoicas/dulcibelle-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StorefrontUC *usecase.StorefrontUseCase
	PlaceOrder   *ordering.PlaceOrderUseCase
	OrderAdminUC *usecase.OrderAdminUseCase
	AuthUC       *auth.AuthUseCase
	Session      SessionCookie
}

// Router registra las rutas de la tienda y del panel.
func Router(app *fiber.App, deps RouterDeps) {
	// Tienda (público)
	storefront := NewStorefrontHandler(deps.StorefrontUC)
	app.Get("/", storefront.Index)
	app.Get("/produit", storefront.Product)
	app.Get("/commander", storefront.OrderForm)
	app.Get("/confirmation/:id", storefront.Confirmation)

	orderHandler := NewOrderHandler(deps.PlaceOrder)
	app.Post("/commander", orderHandler.PlaceOrder)

	// Contenido fijo
	app.Get("/histoire", StaticPage("histoire", "histoire", "Nuestra historia"))
	app.Get("/contact", StaticPage("contact", "contact", "Contacto"))
	app.Get("/mentions-legales", StaticPage("mentions", "", "Aviso legal"))
	app.Get("/cgv", StaticPage("cgv", "cgv", "Condiciones generales de venta"))
	app.Get("/faq", StaticPage("faq", "faq", "Preguntas frecuentes"))

	// Auth del panel (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	app.Get("/admin/login", authHandler.LoginPage)
	app.Post("/admin/login", authHandler.Login)
	app.Get("/admin/logout", authHandler.Logout)

	// Panel (protegido por ruta: un Group con Use también atraparía /admin/login)
	requireAdmin := RequireAdmin(deps.Session)
	adminHandler := NewAdminOrderHandler(deps.OrderAdminUC, deps.AuthUC)
	app.Get("/admin/dashboard", requireAdmin, adminHandler.Dashboard)
	app.Get("/admin/commande/:id", requireAdmin, adminHandler.Detail)
	app.Post("/admin/commande/:id/statut", requireAdmin, adminHandler.ChangeStatus)
	app.Get("/admin/commande/:id/recibo", requireAdmin, adminHandler.Receipt)
}
