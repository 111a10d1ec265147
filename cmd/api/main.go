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

	"github.com/shatalito/pos-api/internal/application/notification"
	"github.com/shatalito/pos-api/internal/application/payment"
	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/infrastructure/mercadopago"
	infrapdf "github.com/shatalito/pos-api/internal/infrastructure/pdf"
	"github.com/shatalito/pos-api/internal/infrastructure/postgres"
	infrasmtp "github.com/shatalito/pos-api/internal/infrastructure/smtp"
	"github.com/shatalito/pos-api/internal/infrastructure/storage"
	httpRouter "github.com/shatalito/pos-api/internal/interfaces/http"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: "api",
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

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	stateRepo := postgres.NewStateRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	paymentCatalogRepo := postgres.NewPaymentCatalogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	images, err := storage.NewImageStore(cfg.Media.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	mailer := infrasmtp.NewMailer(cfg.SMTP)
	notifier := notification.NewOrderNotifier(mailer, log)

	gateway := mercadopago.NewClient(cfg.MercadoPago, log)
	paymentUC := payment.NewUseCase(
		gateway, orderRepo, paymentRepo, paymentCatalogRepo, stateRepo,
		notifier, cfg.MercadoPago, log,
	)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	deps := httpRouter.RouterDeps{
		AuthUC:     usecase.NewAuthUseCase(userRepo, cfg.JWT),
		UserUC:     usecase.NewUserUseCase(userRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo, categoryRepo),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo, promotionRepo),
		OrderUC:    usecase.NewOrderUseCase(orderRepo, stateRepo, txRunner),
		ReceiptUC:  usecase.NewReceiptUseCase(orderRepo, paymentRepo, receiptGenerator),
		KitchenUC:  usecase.NewKitchenUseCase(orderRepo, stateRepo),
		PaymentUC:  paymentUC,
		Images:     images,
		JWTSecret:  cfg.JWT.Secret,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shatalito POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

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
