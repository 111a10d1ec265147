package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres sembrados de métodos y estados de pago.
const (
	MethodMercadoPago = "Mercado Pago"
	MethodBilletera   = "Billetera Electrónica"
	MethodEfectivo    = "Efectivo"

	PaymentAprobado  = "Aprobado"
	PaymentPendiente = "Pendiente"
	PaymentRechazado = "Rechazado"
	PaymentCancelado = "Cancelado"
)

// Payment registra un intento/resultado de pago de un pedido.
// Token es el id de pago del proveedor y actúa como clave natural de
// idempotencia: una redistribución del mismo webhook actualiza el registro
// existente en lugar de insertar uno nuevo.
type Payment struct {
	ID          int64
	OrderID     int64
	MethodID    int64
	MethodName  string // denormalizado en lecturas
	StatusID    int64
	StatusName  string // denormalizado en lecturas
	Amount      decimal.Decimal
	PaymentDate time.Time
	Motive      string
	Token       string
}

// PaymentMethod enumeración de medios de pago.
type PaymentMethod struct {
	ID   int64
	Name string // único
}

// PaymentStatus enumeración de estados de pago.
type PaymentStatus struct {
	ID   int64
	Name string // único
}
