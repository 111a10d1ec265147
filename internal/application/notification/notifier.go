package notification

import (
	"fmt"
	"time"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/pkg/logger"
)

// Mailer puerto de correo saliente. La implementación concreta vive en
// infrastructure/smtp.
type Mailer interface {
	Send(to, subject, body string) error
}

// OrderNotifier envía la confirmación de pedido por correo. El despacho es
// fire-and-forget: corre en una goroutine, reintenta acotado y nunca
// devuelve error al flujo de pago.
type OrderNotifier struct {
	mailer  Mailer
	log     *logger.Logger
	retries int
	backoff time.Duration
}

// NewOrderNotifier construye el notificador.
func NewOrderNotifier(mailer Mailer, log *logger.Logger) *OrderNotifier {
	return &OrderNotifier{mailer: mailer, log: log, retries: 3, backoff: 2 * time.Second}
}

// OrderApproved despacha la confirmación del pedido pagado. Pedidos sin
// correo de cliente se omiten en silencio.
func (n *OrderNotifier) OrderApproved(order *entity.Order) {
	if order == nil || order.CustomerEmail == "" {
		return
	}
	to := order.CustomerEmail
	subject := fmt.Sprintf("Shatalito - Confirmación de pedido #%d", order.ID)
	body := fmt.Sprintf(
		"Hola %s,\n\nRecibimos tu pago y tu pedido #%d ya está en preparación.\nTotal: $%s\n\n¡Gracias por elegirnos!\nShatalito",
		order.CustomerName, order.ID, order.Amount.StringFixed(2),
	)
	go n.dispatch(order.ID, to, subject, body)
}

func (n *OrderNotifier) dispatch(orderID int64, to, subject, body string) {
	var err error
	for attempt := 1; attempt <= n.retries; attempt++ {
		if err = n.mailer.Send(to, subject, body); err == nil {
			n.log.Info().Int64("order_id", orderID).Str("to", to).Msg("Confirmación de pedido enviada")
			return
		}
		n.log.Warn().Err(err).Int64("order_id", orderID).Int("attempt", attempt).Msg("Reintentando envío de confirmación")
		time.Sleep(n.backoff)
	}
	n.log.Error().Err(err).Int64("order_id", orderID).Str("to", to).Msg("No se pudo enviar la confirmación de pedido")
}
