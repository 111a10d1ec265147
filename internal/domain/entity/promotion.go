package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion descuento porcentual con vigencia por fechas, asociable a productos.
type Promotion struct {
	ID                 int64
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

// ActiveOn indica si la promoción está vigente en la fecha dada.
func (p *Promotion) ActiveOn(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}
