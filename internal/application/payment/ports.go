package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// PreferenceItem renglón de la preferencia de pago.
type PreferenceItem struct {
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CurrencyID string          `json:"currency_id"`
}

// BackURLs rutas de retorno del checkout según resultado.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest petición de creación de preferencia al proveedor.
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url,omitempty"`
}

// PreferenceResponse respuesta del proveedor a la creación de preferencia.
type PreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// ProviderPayment datos mínimos de un pago consultado al proveedor.
type ProviderPayment struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	ExternalReference string          `json:"external_reference"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
}

// Gateway puerto hacia la pasarela de pagos. La implementación concreta vive
// en infrastructure/mercadopago.
type Gateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*PreferenceResponse, error)
	GetPayment(ctx context.Context, id string) (*ProviderPayment, error)
}
