package entity

import "github.com/shopspring/decimal"

// Product representa un plato o bebida de la carta.
// Price es el precio vigente; los ítems de pedido capturan su propia copia al crearse.
type Product struct {
	ID           int64
	Name         string // único
	Description  string
	Price        decimal.Decimal
	Stock        int
	Image        string // ruta relativa dentro del directorio de medios
	CategoryID   *int64
	CategoryName string // denormalizado en lecturas
	PromotionID  *int64
	Active       bool
}

// Available indica si el producto puede agregarse a un pedido sin precio explícito.
func (p *Product) Available() bool {
	return p.Active && p.Stock > 0
}
