package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/ememar-console/internal/application/auth"
	"github.com/jhoicas/ememar-console/internal/application/catalog"
	"github.com/jhoicas/ememar-console/internal/application/clients"
	"github.com/jhoicas/ememar-console/internal/application/credit"
	"github.com/jhoicas/ememar-console/internal/application/dashboard"
	"github.com/jhoicas/ememar-console/internal/application/inventory"
	"github.com/jhoicas/ememar-console/internal/application/notify"
	"github.com/jhoicas/ememar-console/internal/application/reports"
	"github.com/jhoicas/ememar-console/internal/application/sales"
	"github.com/jhoicas/ememar-console/internal/infrastructure/emeapi"
	infraexport "github.com/jhoicas/ememar-console/internal/infrastructure/export"
	"github.com/jhoicas/ememar-console/internal/infrastructure/media"
	infrapdf "github.com/jhoicas/ememar-console/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/ememar-console/internal/interfaces/http"
	"github.com/jhoicas/ememar-console/pkg/config"
	"github.com/jhoicas/ememar-console/pkg/logger"
)

// saleDraftTTL vida de un borrador de venta o de producto sin tocar.
const saleDraftTTL = 2 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	zl := log.Zerolog()
	offset := cfg.API.DisplayOffset()

	// API remota: única fuente de verdad, sin base de datos local.
	apiClient := emeapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), zl)
	clientRepo := emeapi.NewClientRepository(apiClient)
	insumoRepo := emeapi.NewInsumoRepository(apiClient)
	productRepo := emeapi.NewProductRepository(apiClient)
	moveRepo := emeapi.NewMovementRepository(apiClient)
	creditRepo := emeapi.NewCreditRepository(apiClient)

	photos := media.NewPhotoOptimizer(cfg.Media.PhotoMaxPx, log.Component("media"))
	statementPDF := infrapdf.NewMarotoStatementGenerator()
	ledgerXLSX := infraexport.NewExcelLedger()

	hub := notify.NewHub(cfg.Notify.Timeout())

	authUC := auth.NewAuthUseCase(cfg.Auth.OperatorPasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := clients.NewClientUseCase(clientRepo, moveRepo, creditRepo, offset, zl)
	insumoUC := inventory.NewInsumoUseCase(insumoRepo, moveRepo, zl)
	catalogUC := catalog.NewCatalogUseCase(productRepo, insumoRepo, photos, zl)
	salesUC := sales.NewSalesUseCase(moveRepo, creditRepo, saleDraftTTL, offset, zl)
	creditUC := credit.NewCreditUseCase(creditRepo, clientRepo, offset, zl)
	dashboardUC := dashboard.NewDashboardUseCase(moveRepo, insumoRepo, offset, zl)
	reportsUC := reports.NewReportsUseCase(clientRepo, creditRepo, moveRepo, statementPDF, ledgerXLSX, offset, zl)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + time.Second*10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // fotos de producto en base64
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderIdempotencyKey,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Eme Mar Console API",
		}))
	} else {
		log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		InsumoUC:    insumoUC,
		CatalogUC:   catalogUC,
		SalesUC:     salesUC,
		CreditUC:    creditUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		Notify:      hub,
		JWTSecret:   cfg.JWT.Secret,
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

	log.Info().Msg("consola detenida")
}
