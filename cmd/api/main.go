package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/dulcibelle-api/docs"
	"github.com/jhoicas/dulcibelle-api/internal/application/auth"
	"github.com/jhoicas/dulcibelle-api/internal/application/notification"
	"github.com/jhoicas/dulcibelle-api/internal/application/ordering"
	"github.com/jhoicas/dulcibelle-api/internal/application/ports"
	"github.com/jhoicas/dulcibelle-api/internal/application/usecase"
	"github.com/jhoicas/dulcibelle-api/internal/domain/repository"
	inframail "github.com/jhoicas/dulcibelle-api/internal/infrastructure/mail"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/dulcibelle-api/internal/infrastructure/pdf"
	"github.com/jhoicas/dulcibelle-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dulcibelle-api/internal/interfaces/http"
	"github.com/jhoicas/dulcibelle-api/pkg/config"
	"github.com/jhoicas/dulcibelle-api/pkg/jwt"
	"github.com/jhoicas/dulcibelle-api/pkg/logger"
	"github.com/jhoicas/dulcibelle-api/pkg/money"
)

// @title        Dulcibelle API
// @version      1.0
// @description  Tienda de un solo producto: pedidos, confirmación y panel de administración.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: PostgreSQL o memoria según STORE_DRIVER
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
		adminRepo   repository.AdminRepository
		txRunner    ordering.TxRunner
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.New()
		productRepo, orderRepo, adminRepo = store.Products(), store.Orders(), store.Admins()
		txRunner = memory.NewTxRunner(store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		productRepo = postgres.NewProductRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
		adminRepo = postgres.NewAdminRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	storefrontUC := usecase.NewStorefrontUseCase(productRepo, orderRepo)
	if created, err := storefrontUC.EnsureProduct(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar producto")
	} else if created {
		log.Info().Msg("producto por defecto creado")
	}

	// Notificaciones: SMTP si MAIL_SERVER está definido; si no, solo log
	var mailer ports.Mailer
	if cfg.Mail.Server != "" {
		mailer = inframail.NewSMTPSender(cfg.Mail)
	} else {
		log.Warn().Msg("MAIL_SERVER vacío: los correos solo se registran")
		mailer = inframail.NewLogSender(log.Named("mail"))
	}
	formatter := money.NewFormatter(cfg.Shop.Locale, cfg.Shop.Currency)
	receipts := infrapdf.NewReceiptGenerator(cfg.Shop.Name, formatter)
	dispatcher := notification.NewDispatcher(mailer, receipts, notification.Config{
		ShopName:   cfg.Shop.Name,
		AdminEmail: cfg.Shop.AdminEmail,
		Money:      formatter,
	}, log.Named("notification"))

	placeOrderUC := ordering.NewPlaceOrderUseCase(txRunner, log.Named("ordering"), dispatcher)
	orderAdminUC := usecase.NewOrderAdminUseCase(orderRepo, productRepo, receipts)
	authUC := auth.NewAuthUseCase(adminRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	})

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:         cfg.App.Name,
		CSRFEnabled:  cfg.Session.CSRFEnabled,
		CookieSecure: cfg.Session.CookieSecure,
		DocsFile:     "./docs/swagger.json",
		Log:          log.Named("http"),
	}, httpRouter.RouterDeps{
		StorefrontUC: storefrontUC,
		PlaceOrder:   placeOrderUC,
		OrderAdminUC: orderAdminUC,
		AuthUC:       authUC,
		Session: httpRouter.SessionCookie{
			Secret:  cfg.Session.Secret,
			Secure:  cfg.Session.CookieSecure,
			Revoked: jwt.NewRevocationList(),
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
