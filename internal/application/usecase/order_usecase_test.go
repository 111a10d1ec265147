package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

func newOrderUC(f *fixture) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(f.orders, f.states, f.tx)
}

func intPtr(v int) *int { return &v }

func TestCheckoutCart_CalculaTotalConPreciosCapturados(t *testing.T) {
	f := newFixture()
	hamburguesa := f.seedProduct("Hamburguesa", "5.00", 10)
	gaseosa := f.seedProduct("Gaseosa", "3.00", 10)
	uc := newOrderUC(f)

	resp, err := uc.CheckoutCart(context.Background(), dto.ClientCartRequest{
		Carrito: []dto.CartLine{
			{ID: hamburguesa.ID, Cantidad: 2},
			{ID: gaseosa.ID, Cantidad: 1, Sugerencia: "sin hielo"},
		},
		Nombre: "Ana",
		Email:  "ana@example.com",
		Table:  4,
	})

	require.NoError(t, err)
	require.True(t, resp.Success)

	order, err := f.orders.GetByIDWithItems(resp.OrderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("13")),
		"total esperado 13, obtenido %s", order.Amount)
	assert.Equal(t, entity.StatePendiente, order.StateName)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "sin hielo", order.Items[1].Sugerencia)
}

func TestCheckoutCart_DatosFaltantes_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("Hamburguesa", "5.00", 10)
	uc := newOrderUC(f)

	cases := []struct {
		name string
		in   dto.ClientCartRequest
	}{
		{"carrito vacío", dto.ClientCartRequest{Nombre: "Ana", Email: "ana@example.com"}},
		{"sin nombre", dto.ClientCartRequest{Carrito: []dto.CartLine{{ID: p.ID, Cantidad: 1}}, Email: "ana@example.com"}},
		{"sin email", dto.ClientCartRequest{Carrito: []dto.CartLine{{ID: p.ID, Cantidad: 1}}, Nombre: "Ana"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CheckoutCart(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.orders.m, "ningún pedido debe persistirse")
}

func TestCheckoutCart_ProductoSinStock_RetornaErrOutOfStock(t *testing.T) {
	f := newFixture()
	agotado := f.seedProduct("Milanesa", "8.00", 0)
	uc := newOrderUC(f)

	_, err := uc.CheckoutCart(context.Background(), dto.ClientCartRequest{
		Carrito: []dto.CartLine{{ID: agotado.ID, Cantidad: 1}},
		Nombre:  "Ana",
		Email:   "ana@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.Empty(t, f.orders.m)
	assert.Empty(t, f.items.m)
}

func TestCheckoutCart_ProductoInactivo_NoDejaPedidoAMedias(t *testing.T) {
	f := newFixture()
	ok := f.seedProduct("Hamburguesa", "5.00", 10)
	inactivo := f.seedProduct("Especial", "9.00", 10)
	inactivo.Active = false
	uc := newOrderUC(f)

	_, err := uc.CheckoutCart(context.Background(), dto.ClientCartRequest{
		Carrito: []dto.CartLine{
			{ID: ok.ID, Cantidad: 1},
			{ID: inactivo.ID, Cantidad: 1},
		},
		Nombre: "Ana",
		Email:  "ana@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrInactiveProduct)
	assert.Empty(t, f.orders.m, "el rollback debe descartar el pedido parcial")
	assert.Empty(t, f.items.m)
}

func TestCreateFromCashier_MesaObligatoria(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	_, err := uc.CreateFromCashier(dto.CreateOrderRequest{CustomerName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateFromCashier_CreaPedidoVacioEnEstadoInicial(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	resp, err := uc.CreateFromCashier(dto.CreateOrderRequest{
		CustomerName: "Ana",
		TableNumber:  intPtr(7),
	})

	require.NoError(t, err)
	assert.Equal(t, "Pedido creado", resp.Message)
	assert.Equal(t, 7, resp.TableNumber)

	order, _ := f.orders.GetByID(resp.OrderID)
	require.NotNil(t, order)
	assert.Equal(t, entity.StatePendiente, order.StateName)
	assert.True(t, order.Amount.IsZero())
}

func TestAddItem_RecalculaElTotal(t *testing.T) {
	f := newFixture()
	hamburguesa := f.seedProduct("Hamburguesa", "5.00", 10)
	gaseosa := f.seedProduct("Gaseosa", "3.00", 10)
	uc := newOrderUC(f)

	created, err := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(2)})
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{
		ProductID: hamburguesa.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	order, _ := f.orders.GetByID(created.OrderID)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("10")))

	_, err = uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{
		ProductID: gaseosa.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	order, _ = f.orders.GetByID(created.OrderID)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("13")))
}

func TestAddItem_PrecioExplicitoIgnoraStock(t *testing.T) {
	f := newFixture()
	agotado := f.seedProduct("Milanesa", "8.00", 0)
	uc := newOrderUC(f)

	created, err := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(1)})
	require.NoError(t, err)

	precio := decimal.RequireFromString("6.50")
	item, err := uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{
		ProductID: agotado.ID,
		Quantity:  2,
		Price:     &precio,
	})

	require.NoError(t, err)
	assert.True(t, item.Price.Equal(precio))
	assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("13")))
}

func TestUpdateItem_CambiaCantidadYMantienePrecioCapturado(t *testing.T) {
	f := newFixture()
	hamburguesa := f.seedProduct("Hamburguesa", "5.00", 10)
	uc := newOrderUC(f)

	created, err := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(3)})
	require.NoError(t, err)
	item, err := uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{
		ProductID: hamburguesa.ID,
		Quantity:  1,
	})
	require.NoError(t, err)

	// El precio del producto cambia después de capturado.
	hamburguesa.Price = decimal.RequireFromString("99.00")

	q := 3
	updated, err := uc.UpdateItem(context.Background(), item.ID, dto.UpdateOrderItemRequest{Quantity: &q})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("5")), "el precio capturado no se toca")
	assert.True(t, updated.Subtotal.Equal(decimal.RequireFromString("15")))

	order, _ := f.orders.GetByID(created.OrderID)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("15")))
}

func TestUpdateItem_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	hamburguesa := f.seedProduct("Hamburguesa", "5.00", 10)
	uc := newOrderUC(f)

	created, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(3)})
	item, err := uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{
		ProductID: hamburguesa.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	q := 0
	_, err = uc.UpdateItem(context.Background(), item.ID, dto.UpdateOrderItemRequest{Quantity: &q})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	kept, _ := f.items.GetByID(item.ID)
	assert.Equal(t, 2, kept.Quantity, "la línea no debe mutar tras el rollback")
}

func TestDeleteItem_RecalculaElTotal(t *testing.T) {
	f := newFixture()
	hamburguesa := f.seedProduct("Hamburguesa", "5.00", 10)
	gaseosa := f.seedProduct("Gaseosa", "3.00", 10)
	uc := newOrderUC(f)

	created, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(5)})
	_, err := uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{ProductID: hamburguesa.ID, Quantity: 2})
	require.NoError(t, err)
	bebida, err := uc.AddItem(context.Background(), created.OrderID, dto.AddOrderItemRequest{ProductID: gaseosa.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteItem(context.Background(), bebida.ID))

	order, _ := f.orders.GetByID(created.OrderID)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("10")))
}

func TestUpdateStatus_EstadoInexistente_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	created, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(1)})

	_, err := uc.UpdateStatus(created.OrderID, 999)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	order, _ := f.orders.GetByID(created.OrderID)
	assert.Equal(t, entity.StatePendiente, order.StateName)
}

func TestUpdateStatus_PedidoInexistente_RetornaErrNotFound(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	_, err := uc.UpdateStatus(42, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_MueveAPedidoCancelado(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	created, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(1)})

	resp, err := uc.Cancel(created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateCancelado, resp.Status)

	order, _ := f.orders.GetByID(created.OrderID)
	assert.Equal(t, entity.StateCancelado, order.StateName)
}

func TestList_FiltraPorEstado(t *testing.T) {
	f := newFixture()
	uc := newOrderUC(f)

	a, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(1)})
	b, _ := uc.CreateFromCashier(dto.CreateOrderRequest{TableNumber: intPtr(2)})
	_, err := uc.UpdateStatus(b.OrderID, 2)
	require.NoError(t, err)

	pendiente := int64(1)
	list, err := uc.List(repository.OrderFilter{StateID: &pendiente})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.OrderID, list[0].ID)
}
