package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/shatalito/pos-api/internal/application/payment"
	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *usecase.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	ReceiptUC  *usecase.ReceiptUseCase
	KitchenUC  *usecase.KitchenUseCase
	PaymentUC  *payment.UseCase
	Images     *storage.ImageStore
	JWTSecret  string
}

// Router registra las rutas de la API con sus reglas de acceso:
//   - client, payments y webhook: públicos
//   - orders: todo el personal de caja (Empleado, Administrador, Super Usuario)
//   - products/categories/promotions: Administrador y Super Usuario
//   - users: solo Super Usuario
//   - kitchen: solo cocinero
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.Images)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	clientHandler := NewClientHandler(deps.ProductUC, deps.OrderUC)
	kitchenHandler := NewKitchenHandler(deps.KitchenUC)

	// Imágenes de productos
	if deps.Images != nil {
		app.Static("/media/products", deps.Images.Dir())
	}

	// Auth (login público con rate limit contra fuerza bruta)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	}), authHandler.Login)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Cliente (público)
	client := api.Group("/client")
	client.Get("/menu", clientHandler.Menu)
	client.Get("/featured", clientHandler.Featured)
	client.Get("/products/:id", clientHandler.ProductDetail)
	client.Post("/checkout", clientHandler.Checkout)

	// Pagos (público: el cliente paga sin cuenta)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := api.Group("/payments")
	payments.Post("/preference", paymentHandler.CreatePreference)
	payments.Post("/result", paymentHandler.ProcessResult)

	// Webhook (público, con rate limit; el proveedor notifica por GET o POST)
	webhookHandler := NewWebhookHandler(deps.PaymentUC)
	webhookLimiter := limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	})
	payments.Post("/webhook", webhookLimiter, webhookHandler.Receive)
	payments.Get("/webhook", webhookLimiter, webhookHandler.Receive)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos (personal de caja)
	staff := RequireRole(entity.StaffRoles()...)
	orders := protected.Group("/orders", staff)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Post("/:id/items", orderHandler.AddItem)
	orders.Put("/items/:itemId", orderHandler.UpdateItem)
	orders.Delete("/items/:itemId", orderHandler.DeleteItem)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Catálogo (administración)
	admin := RequireRole(entity.RoleAdministrador, entity.RoleSuperUsuario)
	products := protected.Group("/products", admin)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id/stock", productHandler.UpdateStock)

	categories := protected.Group("/categories", admin)
	categories.Post("/", categoryHandler.CreateCategory)
	categories.Get("/", categoryHandler.ListCategories)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	promotions := protected.Group("/promotions", admin)
	promotions.Post("/", categoryHandler.CreatePromotion)
	promotions.Get("/", categoryHandler.ListPromotions)

	// Usuarios (solo Super Usuario)
	users := protected.Group("/users", RequireRole(entity.RoleSuperUsuario))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:username", userHandler.Update)
	users.Delete("/:username", userHandler.Delete)

	// Cocina (solo cocinero)
	kitchen := protected.Group("/kitchen", RequireRole(entity.RoleCocinero))
	kitchen.Get("/board", kitchenHandler.Board)
	kitchen.Post("/orders/:id/ready", kitchenHandler.MarkReady)
}
