package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/usecase"
)

// ClientHandler maneja las rutas públicas del cliente: carta, destacados,
// detalle de producto y checkout del carrito.
type ClientHandler struct {
	products *usecase.ProductUseCase
	orders   *usecase.OrderUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(products *usecase.ProductUseCase, orders *usecase.OrderUseCase) *ClientHandler {
	return &ClientHandler{products: products, orders: orders}
}

// Menu godoc
// @Summary      Carta del restaurante agrupada por categoría
// @Tags         client
// @Produce      json
// @Success      200  {array}  dto.MenuSection
// @Router       /api/client/menu [get]
func (h *ClientHandler) Menu(c *fiber.Ctx) error {
	out, err := h.products.Menu()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados (aleatorios, disponibles)
// @Tags         client
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/client/featured [get]
func (h *ClientHandler) Featured(c *fiber.Ctx) error {
	out, err := h.products.Featured(8)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ProductDetail godoc
// @Summary      Detalle de un producto de la carta
// @Tags         client
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/products/{id} [get]
func (h *ClientHandler) ProductDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.products.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Confirmar el carrito y crear el pedido
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientCartRequest  true  "Carrito"
// @Success      201   {object}  dto.ClientCartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/client/checkout [post]
func (h *ClientHandler) Checkout(c *fiber.Ctx) error {
	var in dto.ClientCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IP == "" {
		in.IP = c.IP()
	}
	out, err := h.orders.CheckoutCart(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
