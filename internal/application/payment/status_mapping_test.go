package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shatalito/pos-api/internal/domain/entity"
)

func TestMapProviderStatus_Aprobado(t *testing.T) {
	m := MapProviderStatus("approved")
	assert.Equal(t, entity.PaymentAprobado, m.PaymentStatus)
	assert.Equal(t, entity.StateEnPreparacion, m.OrderState)
}

func TestMapProviderStatus_EnProceso(t *testing.T) {
	for _, s := range []string{"in_process", "pending"} {
		m := MapProviderStatus(s)
		assert.Equal(t, entity.PaymentPendiente, m.PaymentStatus, s)
		assert.Equal(t, entity.StatePendiente, m.OrderState, s)
	}
}

func TestMapProviderStatus_Rechazado(t *testing.T) {
	m := MapProviderStatus("rejected")
	assert.Equal(t, entity.PaymentRechazado, m.PaymentStatus)
	assert.Equal(t, entity.StateCancelado, m.OrderState)
}

func TestMapProviderStatus_Cancelado(t *testing.T) {
	m := MapProviderStatus("cancelled")
	assert.Equal(t, entity.PaymentCancelado, m.PaymentStatus)
	assert.Equal(t, entity.StateCancelado, m.OrderState)
}

func TestMapProviderStatus_DesconocidoNoMueveElPedido(t *testing.T) {
	m := MapProviderStatus("charged_back")
	assert.Equal(t, entity.PaymentPendiente, m.PaymentStatus)
	assert.Empty(t, m.OrderState)
}
