package entity

import (
	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/domain"
)

// OrderItem es una línea de pedido con su propia copia del precio.
// El precio se fija al crear el ítem y no cambia aunque cambie el producto.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string // denormalizado en lecturas
	Sugerencia  string
	Quantity    int
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
}

// NewOrderItem construye una línea de pedido aplicando la regla de creación:
// cantidad positiva; si no se da precio explícito, el producto debe estar
// activo y con stock, y se captura su precio vigente. El subtotal se calcula
// siempre como cantidad × precio.
func NewOrderItem(orderID int64, product *Product, quantity int, price *decimal.Decimal, sugerencia string) (*OrderItem, error) {
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var unit decimal.Decimal
	if price != nil && price.IsPositive() {
		unit = *price
	} else {
		if product.Stock <= 0 {
			return nil, domain.ErrOutOfStock
		}
		if !product.Active {
			return nil, domain.ErrInactiveProduct
		}
		unit = product.Price
	}
	it := &OrderItem{
		OrderID:     orderID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Sugerencia:  sugerencia,
		Quantity:    quantity,
		Price:       unit,
	}
	it.RecalcSubtotal()
	return it, nil
}

// RecalcSubtotal recalcula cantidad × precio. Se invoca en todo camino de guardado.
func (it *OrderItem) RecalcSubtotal() {
	it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
