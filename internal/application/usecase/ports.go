package usecase

import (
	"context"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// ReceiptGenerator puerto de generación del comprobante PDF de un pedido.
// La implementación concreta vive en infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, payments []*entity.Payment) ([]byte, error)
}

// OrderTxRunner ejecuta un callback con repositorios atados a una única
// transacción serializable. Toda mutación de líneas de pedido más el recálculo
// del total pasa por aquí: es la garantía contra lost updates entre ediciones
// concurrentes y entregas de webhooks.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		products repository.ProductRepository,
		states repository.StateRepository,
	) error) error
}
