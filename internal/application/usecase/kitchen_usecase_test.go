package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
)

// seedOrderInState inserta un pedido directamente en el estado dado.
func seedOrderInState(f *fixture, table int, stateID int64, enteredAt time.Time) *entity.Order {
	o := &entity.Order{
		Amount:      decimal.Zero,
		StateID:     stateID,
		InitialTime: enteredAt,
		EndTime:     enteredAt,
		OrderDate:   enteredAt,
		TableNumber: table,
	}
	_ = f.orders.Create(o)
	return o
}

func TestMarkReady_EnPreparacionPasaAListo(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)
	o := seedOrderInState(f, 3, 2, time.Now())

	resp, err := uc.MarkReady(o.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StateListo, resp.Status)

	stored, _ := f.orders.GetByID(o.ID)
	assert.Equal(t, entity.StateListo, stored.StateName)
}

func TestMarkReady_DosVeces_RetornaErrConflict(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)
	o := seedOrderInState(f, 3, 2, time.Now())

	_, err := uc.MarkReady(o.ID)
	require.NoError(t, err)

	_, err = uc.MarkReady(o.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, _ := f.orders.GetByID(o.ID)
	assert.Equal(t, entity.StateListo, stored.StateName, "la segunda marca no debe mover el pedido")
}

func TestMarkReady_PedidoPendiente_RetornaErrConflict(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)
	o := seedOrderInState(f, 1, 1, time.Now())

	_, err := uc.MarkReady(o.ID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	stored, _ := f.orders.GetByID(o.ID)
	assert.Equal(t, entity.StatePendiente, stored.StateName)
}

func TestMarkReady_PedidoInexistente_RetornaErrNotFound(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)

	_, err := uc.MarkReady(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBoard_AgrupaPorMesaYSoloEnPreparacion(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)
	base := time.Now()

	seedOrderInState(f, 2, 2, base.Add(5*time.Minute))
	seedOrderInState(f, 1, 2, base)
	seedOrderInState(f, 1, 2, base.Add(2*time.Minute))
	seedOrderInState(f, 3, 1, base) // Pendiente: fuera del tablero
	seedOrderInState(f, 4, 3, base) // Listo: fuera del tablero

	board, err := uc.Board()

	require.NoError(t, err)
	require.Len(t, board.Tables, 2)
	assert.Equal(t, 1, board.Tables[0].Table)
	assert.Len(t, board.Tables[0].Orders, 2)
	assert.Equal(t, 2, board.Tables[1].Table)
	assert.Len(t, board.Tables[1].Orders, 1)
}

func TestBoard_SinPedidos_RetornaTableroVacio(t *testing.T) {
	f := newFixture()
	uc := usecase.NewKitchenUseCase(f.orders, f.states)

	board, err := uc.Board()

	require.NoError(t, err)
	assert.Empty(t, board.Tables)
}
