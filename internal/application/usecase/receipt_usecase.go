package usecase

import (
	"context"

	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de un pedido con sus pagos.
type ReceiptUseCase struct {
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, payments repository.PaymentRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, payments: payments, generator: generator}
}

// Generate devuelve los bytes del comprobante del pedido.
func (uc *ReceiptUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := uc.orders.GetByIDWithItems(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	pays, err := uc.payments.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceipt(ctx, order, pays)
}
