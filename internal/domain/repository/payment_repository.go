package repository

import "github.com/shatalito/pos-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	// Upsert inserta el pago o, si ya existe uno con el mismo token de
	// proveedor, actualiza su estado/monto/fecha. Es la base de la
	// idempotencia frente a redistribuciones de webhooks.
	Upsert(payment *entity.Payment) error
	GetByToken(token string) (*entity.Payment, error)
	ListByOrder(orderID int64) ([]*entity.Payment, error)
}

// PaymentCatalogRepository resuelve las enumeraciones de métodos y estados de pago (DIP).
type PaymentCatalogRepository interface {
	MethodByName(name string) (*entity.PaymentMethod, error)
	StatusByName(name string) (*entity.PaymentStatus, error)
}
