package mercadopago

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shatalito/pos-api/internal/application/payment"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/logger"
)

// MockRoundTripper permite simular la respuesta HTTP del proveedor.
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func newTestClient(rt http.RoundTripper) *Client {
	cfg := config.MercadoPagoConfig{
		AccessToken:    "test-token",
		BaseURL:        "https://api.mercadopago.com",
		Currency:       "ARS",
		TimeoutSeconds: 5,
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewClient(cfg, log).WithHTTPClient(&http.Client{Transport: rt})
}

func TestClient_CreatePreference(t *testing.T) {
	respBody := `{"id": "pref-123", "init_point": "https://mp.example/checkout/pref-123"}`

	client := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "https://api.mercadopago.com/checkout/preferences", req.URL.String())
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		return &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(bytes.NewBufferString(respBody)),
			Header:     make(http.Header),
		}
	}))

	pref, err := client.CreatePreference(context.Background(), payment.PreferenceRequest{
		ExternalReference: "42",
		AutoReturn:        "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-123", pref.ID)
	assert.Equal(t, "https://mp.example/checkout/pref-123", pref.InitPoint)
}

func TestClient_CreatePreference_ErrorDelProveedor(t *testing.T) {
	client := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(bytes.NewBufferString(`{"message":"invalid items"}`)),
			Header:     make(http.Header),
		}
	}))

	pref, err := client.CreatePreference(context.Background(), payment.PreferenceRequest{})
	assert.Error(t, err)
	assert.Nil(t, pref)
}

func TestClient_GetPayment(t *testing.T) {
	respBody := `{
		"id": 987654321,
		"status": "approved",
		"external_reference": "42",
		"transaction_amount": 1350.50
	}`

	client := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "https://api.mercadopago.com/v1/payments/987654321", req.URL.String())
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(respBody)),
			Header:     make(http.Header),
		}
	}))

	pay, err := client.GetPayment(context.Background(), "987654321")
	require.NoError(t, err)
	assert.Equal(t, "987654321", pay.ID)
	assert.Equal(t, "approved", pay.Status)
	assert.Equal(t, "42", pay.ExternalReference)
	assert.Equal(t, "1350.5", pay.TransactionAmount.String())
}

func TestClient_GetPayment_NoEncontrado(t *testing.T) {
	client := newTestClient(MockRoundTripper(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewBufferString(`{"message":"Payment not found"}`)),
			Header:     make(http.Header),
		}
	}))

	pay, err := client.GetPayment(context.Background(), "000")
	assert.Error(t, err)
	assert.Nil(t, pay)
}
