package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es el pedido de una mesa: cabecera más sus ítems.
// Amount es derivado: siempre igual a la suma de los subtotales de sus ítems
// después de cualquier mutación de ítems.
type Order struct {
	ID            int64
	Amount        decimal.Decimal
	StateID       int64
	StateName     string // denormalizado en lecturas
	IP            string
	InitialTime   time.Time
	EndTime       time.Time // última modificación
	OrderDate     time.Time // solo fecha
	CustomerName  string
	CustomerEmail string
	TableNumber   int
	PreferenceID  string // id de preferencia del proveedor de pagos, best-effort
	Items         []*OrderItem
}
