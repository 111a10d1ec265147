package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación del puerto OrderItemRepository sobre PostgreSQL.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// Create persiste una línea de pedido y asigna su ID.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, sugerencia, quantity, price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.OrderID, item.ProductID, item.Sugerencia, item.Quantity, item.Price, item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *OrderItemRepo) GetByID(id int64) (*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, p.name, i.sugerencia, i.quantity, i.price, i.subtotal
		FROM order_items i JOIN products p ON p.id = i.product_id
		WHERE i.id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Sugerencia,
		&it.Quantity, &it.Price, &it.Subtotal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// Update actualiza cantidad, sugerencia y subtotal de la línea. El precio es
// inmutable después de la creación.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET sugerencia = $2, quantity = $3, subtotal = $4 WHERE id = $1`,
		item.ID, item.Sugerencia, item.Quantity, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *OrderItemRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// ListByOrder lista las líneas de un pedido.
func (r *OrderItemRepo) ListByOrder(orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, p.name, i.sugerencia, i.quantity, i.price, i.subtotal
		FROM order_items i JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Sugerencia, &it.Quantity, &it.Price, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SumByOrder devuelve la suma de subtotales de los ítems del pedido.
func (r *OrderItemRepo) SumByOrder(orderID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(subtotal), 0) FROM order_items WHERE order_id = $1`, orderID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order items: %w", err)
	}
	return total, nil
}
