package usecase

import (
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// CategoryUseCase catálogo de categorías y promociones.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	promotions repository.PromotionRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, promotions repository.PromotionRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, promotions: promotions}
}

// CreateCategory crea una categoría. El nombre es obligatorio y único
// (la unicidad la garantiza la base; el duplicado llega como ErrDuplicate).
func (uc *CategoryUseCase) CreateCategory(name string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: name}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista todas las categorías.
func (uc *CategoryUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categories.List()
}

// DeleteCategory elimina una categoría; los productos asociados quedan sin
// categoría (FK con SET NULL).
func (uc *CategoryUseCase) DeleteCategory(id int64) error {
	existing, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(id)
}

// CreatePromotion crea una promoción con su vigencia.
func (uc *CategoryUseCase) CreatePromotion(p *entity.Promotion) (*entity.Promotion, error) {
	if p == nil || p.Description == "" || !p.DiscountPercentage.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.promotions.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPromotions lista todas las promociones.
func (uc *CategoryUseCase) ListPromotions() ([]*entity.Promotion, error) {
	return uc.promotions.List()
}
