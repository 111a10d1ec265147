package dto

// KitchenTable pedidos en preparación de una mesa.
type KitchenTable struct {
	Table  int             `json:"table"`
	Orders []OrderResponse `json:"orders"`
}

// KitchenBoardResponse tablero de cocina: mesas ordenadas ascendentemente,
// pedidos de cada mesa por hora de entrada.
type KitchenBoardResponse struct {
	Tables []KitchenTable `json:"tables"`
}
