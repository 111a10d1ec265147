package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/payment"
	"github.com/shatalito/pos-api/internal/domain"
)

// WebhookHandler recibe las notificaciones server-to-server del proveedor de
// pagos. El proveedor redistribuye con formatos distintos según la versión:
// el tema puede llegar como topic o type, y el id de pago como data.id, id o
// payment_id, por query string o por cuerpo JSON. Se aceptan todos.
type WebhookHandler struct {
	uc *payment.UseCase
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(uc *payment.UseCase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

type webhookBody struct {
	Topic     string `json:"topic"`
	Type      string `json:"type"`
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Data      struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Receive godoc
// @Summary      Webhook de notificaciones de pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.WebhookResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/payments/webhook [post]
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	topic, paymentID := extractNotification(c)
	if err := h.uc.HandleWebhook(c.Context(), topic, paymentID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Datos insuficientes"})
		}
		// Cualquier otro fallo (proveedor caído, datos corruptos, pedido
		// desconocido) vuelve como 500 estructurado para que el proveedor
		// redistribuya la notificación.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.WebhookResult{Success: false, Error: "No se pudo procesar la notificación"})
	}
	return c.JSON(dto.WebhookResult{Success: true})
}

// extractNotification junta tema e id de pago desde query string y cuerpo,
// con los alias que usa el proveedor.
func extractNotification(c *fiber.Ctx) (topic, paymentID string) {
	topic = firstNonEmpty(c.Query("topic"), c.Query("type"))
	paymentID = firstNonEmpty(c.Query("data.id"), c.Query("id"), c.Query("payment_id"))

	if len(c.Body()) > 0 {
		var body webhookBody
		if err := c.BodyParser(&body); err == nil {
			topic = firstNonEmpty(topic, body.Topic, body.Type)
			paymentID = firstNonEmpty(paymentID, body.Data.ID, body.ID, body.PaymentID)
		}
	}
	return topic, paymentID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
