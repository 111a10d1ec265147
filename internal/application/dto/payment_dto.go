package dto

// CreatePreferenceRequest entrada para crear una preferencia de pago.
type CreatePreferenceRequest struct {
	OrderID   int64  `json:"order_id"`
	ReturnURL string `json:"return_url"`
}

// PreferenceResult resultado estructurado de la creación de preferencia.
// Nunca se propaga una excepción del proveedor: Success=false + Error.
type PreferenceResult struct {
	Success   bool   `json:"success"`
	InitPoint string `json:"init_point,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ProcessResultRequest entrada del retorno síncrono del checkout.
type ProcessResultRequest struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	OrderID   int64  `json:"order_id"`
}

// PaymentResult resultado estructurado del procesamiento de un pago.
type PaymentResult struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"order_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WebhookResult respuesta del receptor de webhooks.
type WebhookResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
