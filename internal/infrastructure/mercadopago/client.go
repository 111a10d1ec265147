package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/application/payment"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/logger"
)

var _ payment.Gateway = (*Client)(nil)

// Client adaptador HTTP del puerto payment.Gateway contra la API de
// Mercado Pago (Checkout Pro).
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         *logger.Logger
}

// NewClient construye el adaptador con el timeout de configuración.
func NewClient(cfg config.MercadoPagoConfig, log *logger.Logger) *Client {
	if cfg.AccessToken == "" {
		log.Warn().Msg("MP_ACCESS_TOKEN vacío: las llamadas al proveedor van a fallar")
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:         log,
	}
}

// WithHTTPClient reemplaza el cliente HTTP (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// CreatePreference crea una preferencia de Checkout Pro.
// POST /checkout/preferences
func (c *Client) CreatePreference(ctx context.Context, req payment.PreferenceRequest) (*payment.PreferenceResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("serializar preferencia: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("armar request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llamar al proveedor: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Error().Int("status", resp.StatusCode).Bytes("body", respBody).Msg("Mercado Pago rechazó la preferencia")
		return nil, fmt.Errorf("mercadopago: status %d", resp.StatusCode)
	}

	var pref payment.PreferenceResponse
	if err := json.Unmarshal(respBody, &pref); err != nil {
		return nil, fmt.Errorf("decodificar preferencia: %w", err)
	}
	c.log.Info().Str("preference_id", pref.ID).Msg("Preferencia de pago creada")
	return &pref, nil
}

// GetPayment consulta un pago por su id de proveedor.
// GET /v1/payments/{id}
func (c *Client) GetPayment(ctx context.Context, id string) (*payment.ProviderPayment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("armar request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llamar al proveedor: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error().Int("status", resp.StatusCode).Str("payment_id", id).Bytes("body", respBody).Msg("Mercado Pago no devolvió el pago")
		return nil, fmt.Errorf("mercadopago: status %d", resp.StatusCode)
	}

	// El id de pago llega como número; se normaliza a string.
	var raw struct {
		ID                json.Number `json:"id"`
		Status            string      `json:"status"`
		ExternalReference string      `json:"external_reference"`
		TransactionAmount float64     `json:"transaction_amount"`
	}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar pago: %w", err)
	}

	return &payment.ProviderPayment{
		ID:                raw.ID.String(),
		Status:            raw.Status,
		ExternalReference: raw.ExternalReference,
		TransactionAmount: decimal.NewFromFloat(raw.TransactionAmount),
	}, nil
}
