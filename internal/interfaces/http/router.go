package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/ememar-console/internal/application/auth"
	"github.com/jhoicas/ememar-console/internal/application/catalog"
	"github.com/jhoicas/ememar-console/internal/application/clients"
	"github.com/jhoicas/ememar-console/internal/application/credit"
	"github.com/jhoicas/ememar-console/internal/application/dashboard"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/inventory"
	"github.com/jhoicas/ememar-console/internal/application/notify"
	"github.com/jhoicas/ememar-console/internal/application/reports"
	"github.com/jhoicas/ememar-console/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *clients.ClientUseCase
	InsumoUC    *inventory.InsumoUseCase
	CatalogUC   *catalog.CatalogUseCase
	SalesUC     *sales.SalesUseCase
	CreditUC    *credit.CreditUseCase
	DashboardUC *dashboard.DashboardUseCase
	ReportsUC   *reports.ReportsUseCase
	Notify      *notify.Hub
	JWTSecret   string

	// LoginMax intentos de login por IP en LoginWindow. 0 usa 5 por minuto.
	LoginMax    int
	LoginWindow time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	n := notifier{hub: deps.Notify}

	// Auth (público, con límite de intentos)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", loginLimiter(deps), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin))

	// Clients
	clientHandler := NewClientHandler(deps.ClientUC, deps.CreditUC, n)
	reportHandler := NewReportHandler(deps.ReportsUC)
	clientsGroup := protected.Group("/clients")
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/:id", clientHandler.Get)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)
	clientsGroup.Get("/:id/history", clientHandler.History)
	clientsGroup.Get("/:id/credit-sales", clientHandler.CreditSales)
	clientsGroup.Get("/:id/statement.pdf", reportHandler.Statement)

	// Insumos
	inventoryHandler := NewInventoryHandler(deps.InsumoUC, n)
	insumos := protected.Group("/insumos")
	insumos.Get("/", inventoryHandler.List)
	insumos.Get("/low-stock", inventoryHandler.LowStock)
	insumos.Post("/", inventoryHandler.Create)
	insumos.Put("/:id", inventoryHandler.Update)
	insumos.Delete("/:id", inventoryHandler.Delete)
	insumos.Get("/:id/restock-preview", inventoryHandler.RestockPreview)
	insumos.Post("/:id/restock", inventoryHandler.Restock)

	// Products
	productHandler := NewProductHandler(deps.CatalogUC, n)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/profitability", productHandler.Profitability)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/insumos", productHandler.AddInsumo)
	products.Put("/:id/insumos/:insumoId", productHandler.UpdateInsumo)
	products.Delete("/:id/insumos/:insumoId", productHandler.RemoveInsumo)
	products.Get("/:id/staged", productHandler.Staged)
	products.Put("/:id/staged/:insumoId", productHandler.Stage)
	products.Post("/:id/staged/:insumoId/commit", productHandler.CommitStaged)
	products.Delete("/:id/staged/:insumoId", productHandler.CancelStaged)

	// Product drafts
	productDrafts := protected.Group("/product-drafts")
	productDrafts.Post("/", productHandler.NewDraft)
	productDrafts.Get("/:draftId", productHandler.GetDraft)
	productDrafts.Patch("/:draftId", productHandler.UpdateDraft)
	productDrafts.Delete("/:draftId", productHandler.DiscardDraft)
	productDrafts.Post("/:draftId/insumos", productHandler.DraftAddInsumo)
	productDrafts.Put("/:draftId/insumos/:insumoId", productHandler.DraftSetQuantity)
	productDrafts.Delete("/:draftId/insumos/:insumoId", productHandler.DraftRemoveInsumo)
	productDrafts.Post("/:draftId/submit", productHandler.SubmitDraft)

	// Sales
	saleHandler := NewSaleHandler(deps.SalesUC, n)
	saleDrafts := protected.Group("/sales/drafts")
	saleDrafts.Post("/", saleHandler.NewDraft)
	saleDrafts.Get("/:draftId", saleHandler.GetDraft)
	saleDrafts.Patch("/:draftId", saleHandler.UpdateDraft)
	saleDrafts.Delete("/:draftId", saleHandler.DiscardDraft)
	saleDrafts.Post("/:draftId/lines", saleHandler.AddLine)
	saleDrafts.Delete("/:draftId/lines/:index", saleHandler.RemoveLine)
	saleDrafts.Post("/:draftId/submit", saleHandler.Submit)

	// Credit
	creditHandler := NewCreditHandler(deps.CreditUC, n)
	creditGroup := protected.Group("/credit")
	creditGroup.Get("/sales", creditHandler.ListSales)
	creditGroup.Get("/sales/:saleId/payments", creditHandler.Payments)
	creditGroup.Post("/payments", creditHandler.Pay)

	// Dashboard y movimientos
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, n)
	protected.Get("/dashboard", dashboardHandler.Summary)
	moves := protected.Group("/moves")
	moves.Get("/", dashboardHandler.Movements)
	moves.Get("/export.xlsx", reportHandler.Ledger)
	moves.Post("/adjust", dashboardHandler.AdjustBalance)

	// Notifications
	notificationHandler := NewNotificationHandler(deps.Notify)
	protected.Get("/notifications", notificationHandler.List)
	protected.Delete("/notifications/:id", notificationHandler.Dismiss)
}

func loginLimiter(deps RouterDeps) fiber.Handler {
	max, window := deps.LoginMax, deps.LoginWindow
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "TOO_MANY_ATTEMPTS",
				Message: "demasiados intentos, espera un momento",
			})
		},
	})
}
