package usecase

import (
	"math/rand"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// ProductUseCase CRUD de la carta para el panel de administración más las
// vistas de menú del cliente.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto nuevo, activo por defecto. El precio debe ser
// positivo y el stock no negativo; el nombre es único (case-insensitive).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, image string) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.IsPositive() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       image,
		CategoryID:  in.CategoryID,
		PromotionID: in.PromotionID,
		Active:      true,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListGrouped lista todos los productos agrupados por categoría (panel admin).
func (uc *ProductUseCase) ListGrouped() (map[string][]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]dto.ProductResponse)
	for _, p := range products {
		cat := p.CategoryName
		if cat == "" {
			cat = "Sin categoría"
		}
		grouped[cat] = append(grouped[cat], *toProductResponse(p))
	}
	return grouped, nil
}

// GetByName busca un producto por nombre exacto (case-insensitive).
func (uc *ProductUseCase) GetByName(name string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByID obtiene el detalle de un producto.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// UpdateStock reemplaza el stock del producto. Valores negativos se rechazan.
func (uc *ProductUseCase) UpdateStock(id int64, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return toProductResponse(product), nil
}

// Menu devuelve la carta del cliente: solo productos activos con stock,
// agrupados por categoría, omitiendo categorías vacías.
func (uc *ProductUseCase) Menu() ([]dto.MenuSection, error) {
	products, err := uc.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	sections := []dto.MenuSection{}
	for _, p := range products {
		cat := p.CategoryName
		if cat == "" {
			cat = "Sin categoría"
		}
		i, ok := index[cat]
		if !ok {
			i = len(sections)
			index[cat] = i
			sections = append(sections, dto.MenuSection{Categoria: cat})
		}
		sections[i].Productos = append(sections[i].Productos, *toProductResponse(p))
	}
	return sections, nil
}

// Featured devuelve hasta n productos disponibles en orden aleatorio
// (portada del cliente).
func (uc *ProductUseCase) Featured(n int) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if len(products) > n {
		products = products[:n]
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	cat := p.CategoryName
	if cat == "" {
		cat = "Sin categoría"
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Categoria:   cat,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Active:      p.Active,
	}
}
