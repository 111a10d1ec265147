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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.stock, p.image,
	p.category_id, COALESCE(c.name, ''), p.promotion_id, p.active`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, image, category_id, promotion_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Stock,
		product.Image, product.CategoryID, product.PromotionID, product.Active,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtiene un producto por nombre (case-insensitive).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE lower(p.name) = lower($1)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, image = $6,
		    category_id = $7, promotion_id = $8, active = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.Image, product.CategoryID, product.PromotionID, product.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock del producto.
func (r *ProductRepo) UpdateStock(id int64, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista todos los productos ordenados por id.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id`
	return r.scanMany(query)
}

// ListAvailable lista productos activos con stock (menú de cliente).
func (r *ProductRepo) ListAvailable() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.active AND p.stock > 0
		ORDER BY p.id`
	return r.scanMany(query)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image,
		&p.CategoryID, &p.CategoryName, &p.PromotionID, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image,
			&p.CategoryID, &p.CategoryName, &p.PromotionID, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
