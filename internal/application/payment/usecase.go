package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/application/dto"
	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
	"github.com/shatalito/pos-api/pkg/config"
	"github.com/shatalito/pos-api/pkg/logger"
)

// Notifier puerto de notificaciones post-pago. La implementación despacha en
// segundo plano y nunca devuelve error al flujo de pago.
type Notifier interface {
	OrderApproved(order *entity.Order)
}

// UseCase orquesta preferencias de pago, retorno síncrono del checkout y
// webhooks del proveedor.
type UseCase struct {
	gateway  Gateway
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	catalog  repository.PaymentCatalogRepository
	states   repository.StateRepository
	notifier Notifier
	cfg      config.MercadoPagoConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. notifier puede ser nil.
func NewUseCase(
	gateway Gateway,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	catalog repository.PaymentCatalogRepository,
	states repository.StateRepository,
	notifier Notifier,
	cfg config.MercadoPagoConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		gateway:  gateway,
		orders:   orders,
		payments: payments,
		catalog:  catalog,
		states:   states,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
	}
}

// CreatePreference crea una preferencia de pago por el total del pedido.
// Los fallos del proveedor no se propagan: vuelven como resultado con
// Success=false para que el cliente pueda reintentar.
func (uc *UseCase) CreatePreference(ctx context.Context, in dto.CreatePreferenceRequest) (*dto.PreferenceResult, error) {
	if in.OrderID <= 0 || in.ReturnURL == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !order.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	req := PreferenceRequest{
		Items: []PreferenceItem{{
			Title:      fmt.Sprintf("Pedido #%d - Shatalito", order.ID),
			Quantity:   1,
			UnitPrice:  order.Amount,
			CurrencyID: uc.cfg.Currency,
		}},
		BackURLs: BackURLs{
			Success: in.ReturnURL + "?status=success",
			Failure: in.ReturnURL + "?status=failure",
			Pending: in.ReturnURL + "?status=pending",
		},
		AutoReturn:        "approved",
		ExternalReference: strconv.FormatInt(order.ID, 10),
		NotificationURL:   uc.cfg.WebhookURL,
	}
	pref, err := uc.gateway.CreatePreference(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).Int64("order_id", order.ID).Msg("Error creando preferencia de pago")
		return &dto.PreferenceResult{Success: false, Error: "No se pudo iniciar el pago"}, nil
	}

	// Guardar la preferencia es best-effort: si falla, el cobro sigue siendo
	// rastreable por external_reference.
	if err := uc.orders.UpdatePreferenceID(order.ID, pref.ID); err != nil {
		uc.log.Warn().Err(err).Int64("order_id", order.ID).Msg("No se pudo guardar el preference_id")
	}

	return &dto.PreferenceResult{Success: true, InitPoint: pref.InitPoint, PaymentID: pref.ID}, nil
}

// ProcessResult procesa el retorno síncrono del checkout (el cliente vuelve
// con payment_id y status en la URL). El status de la URL viaja por el
// navegador del cliente y no es confiable: el estado autoritativo se consulta
// al proveedor, y el pago debe pertenecer al pedido declarado. Registra el
// pago con método "Billetera Electrónica" y mueve el pedido según el estado
// del proveedor.
func (uc *UseCase) ProcessResult(ctx context.Context, in dto.ProcessResultRequest) (*dto.PaymentResult, error) {
	if in.PaymentID == "" || in.Status == "" || in.OrderID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	provider, err := uc.gateway.GetPayment(ctx, in.PaymentID)
	if err != nil {
		uc.log.Error().Err(err).Str("payment_id", in.PaymentID).Int64("order_id", order.ID).
			Msg("Error consultando el pago del retorno de checkout")
		return &dto.PaymentResult{Success: false, Error: "No se pudo verificar el pago"}, nil
	}
	if provider.ExternalReference != strconv.FormatInt(order.ID, 10) {
		return nil, fmt.Errorf("%w: el pago %s no corresponde al pedido %d", domain.ErrConflict, in.PaymentID, order.ID)
	}
	if provider.Status != in.Status {
		uc.log.Warn().Str("payment_id", in.PaymentID).Str("status_url", in.Status).
			Str("status_proveedor", provider.Status).Msg("Status del retorno distinto al del proveedor")
	}

	amount := provider.TransactionAmount
	if !amount.IsPositive() {
		amount = order.Amount
	}
	mapping := MapProviderStatus(provider.Status)
	if err := uc.record(order, entity.MethodBilletera, mapping, in.PaymentID, amount); err != nil {
		return nil, err
	}
	return &dto.PaymentResult{Success: true, OrderID: order.ID, Status: mapping.PaymentStatus}, nil
}

// HandleWebhook procesa una notificación asíncrona del proveedor. Los temas
// que no son de pago se ignoran con éxito; un pago sin id es entrada
// insuficiente. Consulta el pago al proveedor y registra/actualiza el pago
// local con método "Mercado Pago". Idempotente: redistribuciones del mismo
// payment_id actualizan el registro existente.
func (uc *UseCase) HandleWebhook(ctx context.Context, topic, paymentID string) error {
	if topic != "" && topic != "payment" {
		uc.log.Debug().Str("topic", topic).Msg("Webhook ignorado: tema no soportado")
		return nil
	}
	if paymentID == "" {
		return domain.ErrInvalidInput
	}

	provider, err := uc.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("consultar pago %s: %w", paymentID, err)
	}
	// Una external_reference rota es un dato corrupto del proveedor, no una
	// notificación insuficiente: no se trata como error de validación.
	orderID, err := strconv.ParseInt(provider.ExternalReference, 10, 64)
	if err != nil || orderID <= 0 {
		return fmt.Errorf("external_reference inválida %q en el pago %s", provider.ExternalReference, paymentID)
	}
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: pedido %d del webhook", domain.ErrNotFound, orderID)
	}

	amount := provider.TransactionAmount
	if !amount.IsPositive() {
		amount = order.Amount
	}
	mapping := MapProviderStatus(provider.Status)
	if err := uc.record(order, entity.MethodMercadoPago, mapping, paymentID, amount); err != nil {
		return err
	}
	uc.log.Info().
		Int64("order_id", order.ID).
		Str("payment_id", paymentID).
		Str("status", provider.Status).
		Msg("Webhook de pago procesado")
	return nil
}

// record persiste el pago (upsert por token) y mueve el pedido si la
// traducción del estado lo indica. El correo de confirmación se dispara solo
// cuando el pago queda aprobado.
func (uc *UseCase) record(order *entity.Order, methodName string, mapping Mapping, token string, amount decimal.Decimal) error {
	method, err := uc.catalog.MethodByName(methodName)
	if err != nil {
		return err
	}
	if method == nil {
		return fmt.Errorf("%w: método de pago %q", domain.ErrMissingState, methodName)
	}
	status, err := uc.catalog.StatusByName(mapping.PaymentStatus)
	if err != nil {
		return err
	}
	if status == nil {
		return fmt.Errorf("%w: estado de pago %q", domain.ErrMissingState, mapping.PaymentStatus)
	}

	pay := &entity.Payment{
		OrderID:     order.ID,
		MethodID:    method.ID,
		StatusID:    status.ID,
		Amount:      amount,
		PaymentDate: time.Now(),
		Motive:      fmt.Sprintf("Pedido #%d", order.ID),
		Token:       token,
	}
	if err := uc.payments.Upsert(pay); err != nil {
		return err
	}

	if mapping.OrderState != "" {
		state, err := uc.states.GetByName(mapping.OrderState)
		if err != nil {
			return err
		}
		if state == nil {
			return fmt.Errorf("%w: %q", domain.ErrMissingState, mapping.OrderState)
		}
		if err := uc.orders.UpdateStatus(order.ID, state.ID); err != nil {
			return err
		}
	}

	if mapping.PaymentStatus == entity.PaymentAprobado && uc.notifier != nil {
		uc.notifier.OrderApproved(order)
	}
	return nil
}
