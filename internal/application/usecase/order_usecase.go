package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// OrderUseCase ciclo de vida de pedidos: creación (caja y cliente), listado,
// cambio de estado, cancelación y edición de líneas con recálculo del total.
type OrderUseCase struct {
	orders repository.OrderRepository
	states repository.StateRepository
	tx     OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, states repository.StateRepository, tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, states: states, tx: tx}
}

// CreateFromCashier crea un pedido vacío desde caja. La mesa es obligatoria;
// las líneas se agregan después con AddItem. El estado inicial es el primero
// del registro.
func (uc *OrderUseCase) CreateFromCashier(in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.TableNumber == nil || *in.TableNumber <= 0 {
		return nil, domain.ErrInvalidInput
	}
	initial, err := uc.states.First()
	if err != nil {
		return nil, err
	}
	if initial == nil {
		return nil, domain.ErrMissingState
	}
	now := time.Now()
	order := &entity.Order{
		Amount:       decimal.Zero,
		StateID:      initial.ID,
		InitialTime:  now,
		EndTime:      now,
		OrderDate:    now,
		CustomerName: in.CustomerName,
		TableNumber:  *in.TableNumber,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return &dto.CreateOrderResponse{
		Message:      "Pedido creado",
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TableNumber:  order.TableNumber,
	}, nil
}

// CheckoutCart crea un pedido completo desde el carrito del cliente.
// Carrito, nombre y email son obligatorios. Todo ocurre en una transacción:
// si un producto no existe o no puede venderse, no queda pedido a medias.
func (uc *OrderUseCase) CheckoutCart(ctx context.Context, in dto.ClientCartRequest) (*dto.ClientCartResponse, error) {
	if len(in.Carrito) == 0 || in.Nombre == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	var orderID int64
	err := uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		products repository.ProductRepository,
		states repository.StateRepository,
	) error {
		initial, err := states.First()
		if err != nil {
			return err
		}
		if initial == nil {
			return domain.ErrMissingState
		}
		now := time.Now()
		order := &entity.Order{
			Amount:        decimal.Zero,
			StateID:       initial.ID,
			IP:            in.IP,
			InitialTime:   now,
			EndTime:       now,
			OrderDate:     now,
			CustomerName:  in.Nombre,
			CustomerEmail: in.Email,
			TableNumber:   in.Table,
		}
		if err := orders.Create(order); err != nil {
			return err
		}
		total := decimal.Zero
		for _, line := range in.Carrito {
			product, err := products.GetByID(line.ID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			item, err := entity.NewOrderItem(order.ID, product, line.Cantidad, nil, line.Sugerencia)
			if err != nil {
				return err
			}
			if err := items.Create(item); err != nil {
				return err
			}
			total = total.Add(item.Subtotal)
		}
		if err := orders.UpdateAmount(order.ID, total); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ClientCartResponse{Success: true, OrderID: orderID}, nil
}

// List devuelve la vista denormalizada de pedidos según filtros.
func (uc *OrderUseCase) List(filter repository.OrderFilter) ([]dto.OrderResponse, error) {
	orders, err := uc.orders.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene el detalle de un pedido.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByIDWithItems(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// UpdateStatus reemplaza el estado del pedido por id de estado.
// Devuelve ErrInvalidInput si el estado no existe en el registro.
func (uc *OrderUseCase) UpdateStatus(orderID, stateID int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	state, err := uc.states.GetByID(stateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.orders.UpdateStatus(orderID, state.ID); err != nil {
		return nil, err
	}
	order.StateID = state.ID
	order.StateName = state.Name
	return toOrderResponse(order), nil
}

// Cancel pasa el pedido al estado "Cancelado" resuelto por nombre.
// Si ese estado falta en el registro es un problema del despliegue: ErrMissingState.
func (uc *OrderUseCase) Cancel(orderID int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	cancelled, err := uc.states.GetByName(entity.StateCancelado)
	if err != nil {
		return nil, err
	}
	if cancelled == nil {
		return nil, domain.ErrMissingState
	}
	if err := uc.orders.UpdateStatus(orderID, cancelled.ID); err != nil {
		return nil, err
	}
	order.StateID = cancelled.ID
	order.StateName = cancelled.Name
	return toOrderResponse(order), nil
}

// AddItem agrega una línea al pedido y recalcula el total, todo en una
// transacción. El recálculo no es opcional: es el invariante de Amount.
func (uc *OrderUseCase) AddItem(ctx context.Context, orderID int64, in dto.AddOrderItemRequest) (*dto.OrderItemResponse, error) {
	var created *entity.OrderItem
	err := uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		products repository.ProductRepository,
		_ repository.StateRepository,
	) error {
		order, err := orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		item, err := entity.NewOrderItem(orderID, product, in.Quantity, in.Price, in.Sugerencia)
		if err != nil {
			return err
		}
		if err := items.Create(item); err != nil {
			return err
		}
		created = item
		return recomputeAmount(orders, items, orderID)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(created), nil
}

// UpdateItem edita cantidad/sugerencia de una línea. El subtotal se recalcula
// siempre; el precio capturado no se toca.
func (uc *OrderUseCase) UpdateItem(ctx context.Context, itemID int64, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	var updated *entity.OrderItem
	err := uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		_ repository.ProductRepository,
		_ repository.StateRepository,
	) error {
		item, err := items.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Quantity != nil {
			if *in.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			item.Quantity = *in.Quantity
		}
		if in.Sugerencia != nil {
			item.Sugerencia = *in.Sugerencia
		}
		item.RecalcSubtotal()
		if err := items.Update(item); err != nil {
			return err
		}
		updated = item
		return recomputeAmount(orders, items, item.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// DeleteItem elimina una línea y recalcula el total del pedido dueño.
func (uc *OrderUseCase) DeleteItem(ctx context.Context, itemID int64) error {
	return uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		_ repository.ProductRepository,
		_ repository.StateRepository,
	) error {
		item, err := items.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := items.Delete(itemID); err != nil {
			return err
		}
		return recomputeAmount(orders, items, item.OrderID)
	})
}

// recomputeAmount persiste Amount = suma de subtotales de las líneas vigentes.
// Único punto de recálculo, invocado por todo camino que muta líneas.
func recomputeAmount(orders repository.OrderRepository, items repository.OrderItemRepository, orderID int64) error {
	total, err := items.SumByOrder(orderID)
	if err != nil {
		return err
	}
	return orders.UpdateAmount(orderID, total)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, *toItemResponse(it))
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Date:         o.OrderDate.Format("2006-01-02"),
		Status:       o.StateName,
		Total:        o.Amount,
		Table:        o.TableNumber,
		Items:        items,
	}
}

func toItemResponse(it *entity.OrderItem) *dto.OrderItemResponse {
	if it == nil {
		return nil
	}
	return &dto.OrderItemResponse{
		ID:          it.ID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Subtotal:    it.Subtotal,
		Sugerencia:  it.Sugerencia,
	}
}
