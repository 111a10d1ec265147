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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	o.id, o.amount, o.state_id, s.name, o.ip, o.initial_time, o.end_time,
	o.order_date, o.customer_name, o.customer_email, o.table_number, o.preference_id`

// Create persiste un pedido nuevo y asigna su ID.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (amount, state_id, ip, initial_time, end_time, order_date,
		                    customer_name, customer_email, table_number, preference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.Amount, order.StateID, order.IP, order.InitialTime, order.EndTime,
		order.OrderDate, order.CustomerName, order.CustomerEmail, order.TableNumber,
		order.PreferenceID,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido por ID.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o JOIN states s ON s.id = o.state_id
		WHERE o.id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Amount, &o.StateID, &o.StateName, &o.IP, &o.InitialTime, &o.EndTime,
		&o.OrderDate, &o.CustomerName, &o.CustomerEmail, &o.TableNumber, &o.PreferenceID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetByIDWithItems carga la orden junto con sus líneas.
func (r *OrderRepo) GetByIDWithItems(id int64) (*entity.Order, error) {
	order, err := r.GetByID(id)
	if err != nil || order == nil {
		return order, err
	}
	items, err := NewOrderItemRepository(r.q).ListByOrder(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// List devuelve pedidos con ítems según el filtro, ordenados por fecha
// descendente y luego id.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o JOIN states s ON s.id = o.state_id
		WHERE ($1::bigint IS NULL OR o.state_id = $1)
		  AND ($2::date   IS NULL OR o.order_date = $2)
		ORDER BY o.order_date DESC, o.id`
	orders, err := r.scanMany(query, filter.StateID, filter.OrderDate)
	if err != nil {
		return nil, err
	}
	return r.attachItems(orders)
}

// ListByState devuelve pedidos en un estado, ordenados por mesa y hora inicial.
func (r *OrderRepo) ListByState(stateID int64) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o JOIN states s ON s.id = o.state_id
		WHERE o.state_id = $1
		ORDER BY o.table_number, o.initial_time`
	orders, err := r.scanMany(query, stateID)
	if err != nil {
		return nil, err
	}
	return r.attachItems(orders)
}

// UpdateStatus reemplaza el estado del pedido y refresca end_time.
func (r *OrderRepo) UpdateStatus(id, stateID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET state_id = $2, end_time = now() WHERE id = $1`, id, stateID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdateAmount persiste el total derivado del pedido.
func (r *OrderRepo) UpdateAmount(id int64, amount decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET amount = $2, end_time = now() WHERE id = $1`, id, amount)
	if err != nil {
		return fmt.Errorf("update order amount: %w", err)
	}
	return nil
}

// UpdatePreferenceID guarda el id de preferencia del proveedor de pagos.
func (r *OrderRepo) UpdatePreferenceID(id int64, preferenceID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET preference_id = $2 WHERE id = $1`, id, preferenceID)
	if err != nil {
		return fmt.Errorf("update order preference: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Amount, &o.StateID, &o.StateName, &o.IP,
			&o.InitialTime, &o.EndTime, &o.OrderDate, &o.CustomerName, &o.CustomerEmail,
			&o.TableNumber, &o.PreferenceID); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// attachItems carga las líneas de todos los pedidos del listado en una sola consulta.
func (r *OrderRepo) attachItems(orders []*entity.Order) ([]*entity.Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*entity.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	query := `
		SELECT i.id, i.order_id, i.product_id, p.name, i.sugerencia, i.quantity, i.price, i.subtotal
		FROM order_items i JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Sugerencia, &it.Quantity, &it.Price, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if o := byID[it.OrderID]; o != nil {
			o.Items = append(o.Items, &it)
		}
	}
	return orders, rows.Err()
}
