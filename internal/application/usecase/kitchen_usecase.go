package usecase

import (
	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// KitchenUseCase tablero de cocina: pedidos en preparación agrupados por mesa
// y la única transición que cocina puede ejecutar (En Preparación -> Listo).
type KitchenUseCase struct {
	orders repository.OrderRepository
	states repository.StateRepository
}

// NewKitchenUseCase construye el caso de uso.
func NewKitchenUseCase(orders repository.OrderRepository, states repository.StateRepository) *KitchenUseCase {
	return &KitchenUseCase{orders: orders, states: states}
}

// Board lista los pedidos En Preparación agrupados por mesa, cada mesa
// ordenada por hora de entrada.
func (uc *KitchenUseCase) Board() (*dto.KitchenBoardResponse, error) {
	preparing, err := uc.states.GetByName(entity.StateEnPreparacion)
	if err != nil {
		return nil, err
	}
	if preparing == nil {
		return nil, domain.ErrMissingState
	}
	orders, err := uc.orders.ListByState(preparing.ID)
	if err != nil {
		return nil, err
	}
	// El repositorio ya ordena por mesa y hora; aquí solo se agrupa.
	board := &dto.KitchenBoardResponse{Tables: []dto.KitchenTable{}}
	for _, o := range orders {
		n := len(board.Tables)
		if n == 0 || board.Tables[n-1].Table != o.TableNumber {
			board.Tables = append(board.Tables, dto.KitchenTable{Table: o.TableNumber})
			n++
		}
		board.Tables[n-1].Orders = append(board.Tables[n-1].Orders, *toOrderResponse(o))
	}
	return board, nil
}

// MarkReady mueve un pedido de En Preparación a Listo. Cualquier otro estado
// actual hace la transición ilegal: no se toca el pedido y se devuelve
// ErrConflict para que el llamador informe al usuario.
func (uc *KitchenUseCase) MarkReady(orderID int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	preparing, err := uc.states.GetByName(entity.StateEnPreparacion)
	if err != nil {
		return nil, err
	}
	ready, err := uc.states.GetByName(entity.StateListo)
	if err != nil {
		return nil, err
	}
	if preparing == nil || ready == nil {
		return nil, domain.ErrMissingState
	}
	if order.StateID != preparing.ID {
		return nil, domain.ErrConflict
	}
	if err := uc.orders.UpdateStatus(orderID, ready.ID); err != nil {
		return nil, err
	}
	order.StateID = ready.ID
	order.StateName = ready.Name
	return toOrderResponse(order), nil
}
