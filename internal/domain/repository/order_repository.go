package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos. Punteros nil = sin filtro.
type OrderFilter struct {
	StateID   *int64
	OrderDate *time.Time // fecha exacta
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// Las lecturas devuelven StateName denormalizado; List incluye los ítems.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	// GetByIDWithItems carga la orden junto con sus líneas.
	GetByIDWithItems(id int64) (*entity.Order, error)
	// List devuelve pedidos con ítems, ordenados por fecha descendente y luego id.
	List(filter OrderFilter) ([]*entity.Order, error)
	// ListByState devuelve pedidos en un estado, ordenados por mesa y hora inicial (cocina).
	ListByState(stateID int64) ([]*entity.Order, error)
	UpdateStatus(id, stateID int64) error
	UpdateAmount(id int64, amount decimal.Decimal) error
	UpdatePreferenceID(id int64, preferenceID string) error
}

// OrderItemRepository define el puerto de persistencia para OrderItem (DIP).
type OrderItemRepository interface {
	Create(item *entity.OrderItem) error
	GetByID(id int64) (*entity.OrderItem, error)
	Update(item *entity.OrderItem) error
	Delete(id int64) error
	ListByOrder(orderID int64) ([]*entity.OrderItem, error)
	// SumByOrder devuelve la suma de subtotales de los ítems del pedido.
	SumByOrder(orderID int64) (decimal.Decimal, error)
}

// StateRepository define el puerto del registro de estados (DIP).
type StateRepository interface {
	GetByID(id int64) (*entity.State, error)
	GetByName(name string) (*entity.State, error)
	// First devuelve el estado de menor id (estado por defecto de pedidos nuevos).
	First() (*entity.State, error)
	List() ([]*entity.State, error)
}
