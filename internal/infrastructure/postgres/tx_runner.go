package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shatalito/pos-api/internal/application/usecase"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.OrderTxRunner.
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// Reintentos ante fallos de serialización (40001). Las ediciones de ítems y
// las entregas de webhooks pueden chocar sobre el mismo pedido; el callback
// solo opera sobre los repos de la transacción, así que reejecutarlo es seguro.
const maxSerializationRetries = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Usa aislamiento serializable: toda mutación de ítems más el recálculo del
// total del pedido ocurre como una unidad, sin lost updates entre ediciones
// concurrentes y entregas de webhooks.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción serializable, reintentando hasta
// maxSerializationRetries veces cuando la transacción aborta por un fallo de
// serialización.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	products repository.ProductRepository,
	states repository.StateRepository,
) error) error {
	var err error
	for attempt := 0; attempt <= maxSerializationRetries; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("transacción abortada tras %d reintentos: %w", maxSerializationRetries, err)
}

// runOnce inicia una transacción serializable, ejecuta fn con repos atados a
// la tx y hace Commit o Rollback.
func (r *TxRunner) runOnce(ctx context.Context, fn func(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	products repository.ProductRepository,
	states repository.StateRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orders := NewOrderRepository(tx)
	items := NewOrderItemRepository(tx)
	products := NewProductRepository(tx)
	states := NewStateRepository(tx)

	if err := fn(orders, items, products, states); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// isSerializationFailure verifica si un error es un fallo de serialización (40001).
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" // serialization_failure
	}
	return false
}
