package repository

import "github.com/shatalito/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id int64) error
}

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id int64) (*entity.Promotion, error)
	List() ([]*entity.Promotion, error)
	Delete(id int64) error
}
