package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/payment"
)

// PaymentHandler maneja el checkout de pagos: creación de preferencia y
// retorno síncrono del proveedor.
type PaymentHandler struct {
	uc *payment.UseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payment.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreatePreference godoc
// @Summary      Crear preferencia de pago para un pedido
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePreferenceRequest  true  "Pedido y URL de retorno"
// @Success      200   {object}  dto.PreferenceResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/preference [post]
func (h *PaymentHandler) CreatePreference(c *fiber.Ctx) error {
	var in dto.CreatePreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePreference(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ProcessResult godoc
// @Summary      Procesar el retorno síncrono del checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessResultRequest  true  "Resultado del checkout"
// @Success      200   {object}  dto.PaymentResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/result [post]
func (h *PaymentHandler) ProcessResult(c *fiber.Ctx) error {
	var in dto.ProcessResultRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El retorno también puede llegar por query string (redirección del proveedor).
	if in.PaymentID == "" {
		in.PaymentID = c.Query("payment_id")
	}
	if in.Status == "" {
		in.Status = c.Query("status")
	}
	if in.OrderID == 0 {
		in.OrderID = int64(c.QueryInt("order_id"))
	}
	out, err := h.uc.ProcessResult(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
