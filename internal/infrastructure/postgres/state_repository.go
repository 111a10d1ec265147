package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo implementación del registro de estados sobre PostgreSQL.
type StateRepo struct {
	q Querier
}

// NewStateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStateRepository(q Querier) *StateRepo {
	return &StateRepo{q: q}
}

// GetByID obtiene un estado por ID.
func (r *StateRepo) GetByID(id int64) (*entity.State, error) {
	return r.scanOne(`SELECT id, name FROM states WHERE id = $1`, id)
}

// GetByName obtiene un estado por nombre.
func (r *StateRepo) GetByName(name string) (*entity.State, error) {
	return r.scanOne(`SELECT id, name FROM states WHERE name = $1`, name)
}

// First devuelve el estado de menor id (default de pedidos nuevos).
func (r *StateRepo) First() (*entity.State, error) {
	return r.scanOne(`SELECT id, name FROM states ORDER BY id LIMIT 1`)
}

// List lista todos los estados ordenados por id.
func (r *StateRepo) List() ([]*entity.State, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM states ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()
	var list []*entity.State
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StateRepo) scanOne(query string, args ...any) (*entity.State, error) {
	var s entity.State
	err := r.q.QueryRow(context.Background(), query, args...).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get state: %w", err)
	}
	return &s, nil
}
