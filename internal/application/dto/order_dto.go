package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest entrada del flujo de caja: pedido vacío al que luego se
// agregan líneas. El nombre de cliente es opcional; la mesa es obligatoria.
type CreateOrderRequest struct {
	CustomerName string `json:"customer_name"`
	TableNumber  *int   `json:"table_number"`
}

// CreateOrderResponse confirmación de creación.
type CreateOrderResponse struct {
	Message      string `json:"message"`
	OrderID      int64  `json:"order_id"`
	CustomerName string `json:"customer_name"`
	TableNumber  int    `json:"table_number"`
}

// CartLine una línea del carrito del cliente.
type CartLine struct {
	ID         int64  `json:"id"` // id de producto
	Cantidad   int    `json:"cantidad"`
	Sugerencia string `json:"sugerency"`
}

// ClientCartRequest entrada del checkout de cliente.
type ClientCartRequest struct {
	Carrito []CartLine `json:"carrito"`
	Nombre  string     `json:"nombre"`
	Email   string     `json:"email"`
	DNI     string     `json:"dni"`
	IP      string     `json:"ip"`
	Table   int        `json:"table"`
}

// ClientCartResponse resultado del checkout.
type ClientCartResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Sugerencia  string          `json:"sugerency"`
}

// OrderResponse vista denormalizada de un pedido.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerName string              `json:"customer_name"`
	Date         string              `json:"date"` // YYYY-MM-DD
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	Table        int                 `json:"table"`
	Items        []OrderItemResponse `json:"items"`
}

// UpdateOrderStatusRequest reemplazo de estado por id.
type UpdateOrderStatusRequest struct {
	Status *int64 `json:"status"`
}

// AddOrderItemRequest alta de línea desde la interfaz de edición de caja.
// Price opcional: si falta se captura el precio vigente del producto.
type AddOrderItemRequest struct {
	ProductID  int64            `json:"product_id"`
	Quantity   int              `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
	Sugerencia string           `json:"sugerency"`
}

// UpdateOrderItemRequest edición de línea: cantidad y sugerencia.
// El precio capturado es inmutable.
type UpdateOrderItemRequest struct {
	Quantity   *int    `json:"quantity"`
	Sugerencia *string `json:"sugerency"`
}
