package repository

import "github.com/shatalito/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id int64, stock int) error
	List() ([]*entity.Product, error)
	// ListAvailable lista productos activos con stock > 0 (menú de cliente).
	ListAvailable() ([]*entity.Product, error)
	Delete(id int64) error
}
