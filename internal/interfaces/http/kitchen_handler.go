package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/usecase"
)

// KitchenHandler maneja el tablero de cocina (solo rol cocinero).
type KitchenHandler struct {
	uc *usecase.KitchenUseCase
}

// NewKitchenHandler construye el handler.
func NewKitchenHandler(uc *usecase.KitchenUseCase) *KitchenHandler {
	return &KitchenHandler{uc: uc}
}

// Board godoc
// @Summary      Tablero de cocina: pedidos en preparación agrupados por mesa
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.KitchenBoardResponse
// @Router       /api/kitchen/board [get]
func (h *KitchenHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// MarkReady godoc
// @Summary      Marcar un pedido como listo
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/kitchen/orders/{id}/ready [post]
func (h *KitchenHandler) MarkReady(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.MarkReady(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
