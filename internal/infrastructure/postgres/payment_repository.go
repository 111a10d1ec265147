package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Upsert inserta el pago o actualiza el existente con el mismo token.
// El proveedor puede redistribuir la misma notificación varias veces; el token
// (id de pago del proveedor) es la clave de idempotencia.
func (r *PaymentRepo) Upsert(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, method_id, status_id, amount, payment_date, motive, token)
		VALUES ($1, $2, $3, $4, now(), $5, $6)
		ON CONFLICT (token) DO UPDATE
		SET status_id = EXCLUDED.status_id,
		    amount = EXCLUDED.amount,
		    payment_date = now()
		RETURNING id, payment_date`
	err := r.q.QueryRow(context.Background(), query,
		payment.OrderID, payment.MethodID, payment.StatusID, payment.Amount,
		payment.Motive, payment.Token,
	).Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return fmt.Errorf("upsert payment: %w", err)
	}
	return nil
}

// GetByToken obtiene un pago por token del proveedor.
func (r *PaymentRepo) GetByToken(token string) (*entity.Payment, error) {
	query := `
		SELECT p.id, p.order_id, p.method_id, m.name, p.status_id, s.name,
		       p.amount, p.payment_date, p.motive, p.token
		FROM payments p
		JOIN payment_methods m ON m.id = p.method_id
		JOIN payment_statuses s ON s.id = p.status_id
		WHERE p.token = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&p.ID, &p.OrderID, &p.MethodID, &p.MethodName, &p.StatusID, &p.StatusName,
		&p.Amount, &p.PaymentDate, &p.Motive, &p.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByOrder lista los pagos de un pedido, más reciente primero.
func (r *PaymentRepo) ListByOrder(orderID int64) ([]*entity.Payment, error) {
	query := `
		SELECT p.id, p.order_id, p.method_id, m.name, p.status_id, s.name,
		       p.amount, p.payment_date, p.motive, p.token
		FROM payments p
		JOIN payment_methods m ON m.id = p.method_id
		JOIN payment_statuses s ON s.id = p.status_id
		WHERE p.order_id = $1
		ORDER BY p.payment_date DESC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.MethodID, &p.MethodName,
			&p.StatusID, &p.StatusName, &p.Amount, &p.PaymentDate, &p.Motive, &p.Token); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.PaymentCatalogRepository = (*PaymentCatalogRepo)(nil)

// PaymentCatalogRepo resuelve métodos y estados de pago por nombre.
type PaymentCatalogRepo struct {
	q Querier
}

// NewPaymentCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentCatalogRepository(q Querier) *PaymentCatalogRepo {
	return &PaymentCatalogRepo{q: q}
}

// MethodByName obtiene un método de pago por nombre.
func (r *PaymentCatalogRepo) MethodByName(name string) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM payment_methods WHERE name = $1`, name,
	).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// StatusByName obtiene un estado de pago por nombre.
func (r *PaymentCatalogRepo) StatusByName(name string) (*entity.PaymentStatus, error) {
	var s entity.PaymentStatus
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM payment_statuses WHERE name = $1`, name,
	).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment status: %w", err)
	}
	return &s, nil
}
