package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockbit/stockbit-api/internal/application/auth"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CheckoutUC     *usecase.CheckoutUseCase
	SaleUC         *usecase.SaleUseCase
	StocktakeUC    *usecase.StocktakeUseCase
	SupplierUC     *usecase.SupplierUseCase
	SettingsUC     *usecase.SettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *usecase.ReportUseCase
	AIUC           *usecase.AIUseCase
	Subscriber     ports.EventSubscriber
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil (protegido)
	authGroup2 := protected.Group("/auth")
	authGroup2.Get("/profile", authHandler.Profile)
	authGroup2.Put("/profile", authHandler.UpdateProfile)
	authGroup2.Post("/onboarding-seen", authHandler.MarkOnboardingSeen)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.SaleUC)
	sales.Post("/checkout", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Patch("/status", saleHandler.UpdateStatus)
	sales.Delete("/", saleHandler.Delete)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Stocktake (protegido)
	stocktake := protected.Group("/stocktake")
	stocktakeHandler := NewStocktakeHandler(deps.StocktakeUC)
	stocktake.Post("/reconcile", stocktakeHandler.Reconcile)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Settings (protegido; escritura solo admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingsHandler.Update)
	settings.Post("/categories", settingsHandler.AddCategory)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/", notificationHandler.ClearAll)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Get)

	// AI (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/identify", aiHandler.Identify)
	ai.Post("/extract", aiHandler.Extract)
	ai.Get("/insights", aiHandler.Insights)

	// Sync (protegido, SSE)
	sync := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.Subscriber, deps.Log)
	sync.Get("/stream", syncHandler.Stream)
}
