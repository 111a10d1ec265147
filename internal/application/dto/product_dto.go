package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto (multipart: la imagen
// llega como archivo y se persiste aparte).
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Stock       int             `json:"stock" form:"stock"`
	CategoryID  *int64          `json:"category" form:"category"`
	PromotionID *int64          `json:"promotion" form:"promotion"`
}

// UpdateStockRequest actualización puntual de stock.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Categoria   string          `json:"categoria"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image,omitempty"`
	Active      bool            `json:"active"`
}

// MenuSection categoría de la carta con sus productos disponibles.
type MenuSection struct {
	Categoria string            `json:"categoria"`
	Productos []ProductResponse `json:"productos"`
}
