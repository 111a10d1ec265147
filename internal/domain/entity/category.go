package entity

// Category agrupa productos de la carta (Entradas, Bebidas, Postres...).
type Category struct {
	ID   int64
	Name string // único
}
