package entity

// Nombres de estados sembrados en el registro. Los ids son datos, no código:
// toda transición se resuelve por nombre contra el registro.
const (
	StatePendiente     = "Pendiente"
	StateEnPreparacion = "En Preparación"
	StateListo         = "Listo"
	StatePagado        = "Pagado"
	StateCancelado     = "Cancelado"
)

// State es una etapa nombrada del ciclo de vida de un pedido.
type State struct {
	ID   int64
	Name string // único
}
