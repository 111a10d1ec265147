package payment

import "github.com/shatalito/pos-api/internal/domain/entity"

// Mapping destino de un estado del proveedor: estado del pago y estado al que
// pasa el pedido. OrderState vacío significa no tocar el pedido.
type Mapping struct {
	PaymentStatus string
	OrderState    string
}

// MapProviderStatus traduce el estado crudo del proveedor a los nombres
// internos. Función pura y punto único de traducción: todo flujo que reciba
// un estado del proveedor (retorno síncrono o webhook) pasa por acá.
// Estados desconocidos se tratan como pendientes sin mover el pedido.
func MapProviderStatus(status string) Mapping {
	switch status {
	case "approved":
		return Mapping{PaymentStatus: entity.PaymentAprobado, OrderState: entity.StateEnPreparacion}
	case "in_process", "pending":
		return Mapping{PaymentStatus: entity.PaymentPendiente, OrderState: entity.StatePendiente}
	case "rejected":
		return Mapping{PaymentStatus: entity.PaymentRechazado, OrderState: entity.StateCancelado}
	case "cancelled":
		return Mapping{PaymentStatus: entity.PaymentCancelado, OrderState: entity.StateCancelado}
	default:
		return Mapping{PaymentStatus: entity.PaymentPendiente}
	}
}
