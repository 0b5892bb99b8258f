package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stockbit/stockbit-api/internal/application/auth"
	"github.com/stockbit/stockbit-api/internal/application/ports"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	infraai "github.com/stockbit/stockbit-api/internal/infrastructure/ai"
	"github.com/stockbit/stockbit-api/internal/infrastructure/mail"
	infrapdf "github.com/stockbit/stockbit-api/internal/infrastructure/pdf"
	"github.com/stockbit/stockbit-api/internal/infrastructure/postgres"
	"github.com/stockbit/stockbit-api/internal/infrastructure/redisfeed"
	httpRouter "github.com/stockbit/stockbit-api/internal/interfaces/http"
	"github.com/stockbit/stockbit-api/pkg/config"
	"github.com/stockbit/stockbit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Feed de cambios (opcional: sin REDIS_ADDR la API funciona sin stream).
	var publisher ports.EventPublisher
	var subscriber ports.EventSubscriber
	if cfg.Redis.Addr != "" {
		redisClient, err := redisfeed.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		feed := redisfeed.New(redisClient)
		publisher = feed
		subscriber = feed
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: feed de sincronización deshabilitado")
	}

	// Correo de alertas (opcional: sin SMTP_HOST solo queda la notificación in-app).
	var mailer ports.MailSender
	if cfg.SMTP.Host != "" {
		mailer = mail.NewGomailSender(cfg.SMTP)
	}

	alerter := usecase.NewLowStockAlerter(notificationRepo, settingsRepo, mailer, log)

	authUC := auth.NewAuthUseCase(userRepo, settingsRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, settingsRepo, alerter, publisher, log)
	checkoutUC := usecase.NewCheckoutUseCase(productRepo, txRunner, alerter, publisher, log)
	saleUC := usecase.NewSaleUseCase(saleRepo, settingsRepo, infrapdf.NewMarotoReceiptGenerator(), publisher, log)
	stocktakeUC := usecase.NewStocktakeUseCase(productRepo, alerter, publisher, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, settingsRepo, publisher, log)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, publisher, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	reportUC := usecase.NewReportUseCase(saleRepo, productRepo)

	// Proveedor de IA según configuración; sin API key la función queda deshabilitada.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey != "" {
			llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	default:
		if cfg.AI.GeminiAPIKey != "" {
			llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
	}
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("IA deshabilitada: sin API key")
	}
	aiUC := usecase.NewAIUseCase(llm, productRepo, saleRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // imágenes base64 para las rutas de IA
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockBit API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CheckoutUC:     checkoutUC,
		SaleUC:         saleUC,
		StocktakeUC:    stocktakeUC,
		SupplierUC:     supplierUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		ReportUC:       reportUC,
		AIUC:           aiUC,
		Subscriber:     subscriber,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
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
