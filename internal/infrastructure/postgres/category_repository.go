package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		category.Name,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación del puerto PromotionRepository sobre PostgreSQL.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

// Create persiste una nueva promoción.
func (r *PromotionRepo) Create(promotion *entity.Promotion) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO promotions (description, discount_percentage, start_date, end_date)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		promotion.Description, promotion.DiscountPercentage, promotion.StartDate, promotion.EndDate,
	).Scan(&promotion.ID)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(id int64) (*entity.Promotion, error) {
	var p entity.Promotion
	err := r.q.QueryRow(context.Background(),
		`SELECT id, description, discount_percentage, start_date, end_date
		 FROM promotions WHERE id = $1`, id,
	).Scan(&p.ID, &p.Description, &p.DiscountPercentage, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}

// List lista todas las promociones.
func (r *PromotionRepo) List() ([]*entity.Promotion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, description, discount_percentage, start_date, end_date FROM promotions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(&p.ID, &p.Description, &p.DiscountPercentage, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una promoción por ID.
func (r *PromotionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
