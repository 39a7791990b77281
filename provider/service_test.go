package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a minimal PaymentProvider for service-level tests.
type stubProvider struct {
	key        string
	secret     string
	initErr    error
	createErr  error
	parseErr   error
	currencies []string
}

func (s *stubProvider) Key() string                   { return s.key }
func (s *stubProvider) DisplayName() string           { return "Stub " + s.key }
func (s *stubProvider) SupportedCurrencies() []string { return s.currencies }
func (s *stubProvider) SignatureHeader() string       { return "X-Stub-Signature" }

func (s *stubProvider) Initialize(conf map[string]string) error {
	if s.initErr != nil {
		return s.initErr
	}
	s.secret = conf["webhookSecret"]
	return nil
}

func (s *stubProvider) CreateCheckoutSession(ctx context.Context, request CheckoutRequest) (*CheckoutSession, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &CheckoutSession{
		ID:          s.key + "_session_1",
		Provider:    s.key,
		RedirectURL: "https://checkout.example/" + s.key,
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil
}

func (s *stubProvider) VerifyWebhookSignature(body []byte, headers map[string]string) bool {
	signature := HeaderValue(headers, s.SignatureHeader())
	return VerifyWebhookSignature(s.secret, body, signature)
}

func (s *stubProvider) ParseWebhookEvent(body []byte) (*PaymentEvent, error) {
	if s.parseErr != nil {
		return nil, s.parseErr
	}
	return &PaymentEvent{
		ID:        "evt_stub",
		Provider:  s.key,
		Type:      "stub.event",
		Payload:   map[string]any{"raw": string(body)},
		CreatedAt: time.Now(),
	}, nil
}

func registerStub(t *testing.T, stub *stubProvider) {
	t.Helper()
	Register(stub.key, func() PaymentProvider { return stub })
}

func TestPaymentService_AddProvider_FailFast(t *testing.T) {
	stub := &stubProvider{
		key: "stub-misconfigured",
		initErr: &ProviderConfigurationError{
			Provider: "stub-misconfigured",
			Message:  "apiKey is required",
		},
	}
	registerStub(t, stub)

	service := NewPaymentService(NewEventStore(), nil)

	err := service.AddProvider("stub-misconfigured", map[string]string{})

	var configErr *ProviderConfigurationError
	require.ErrorAs(t, err, &configErr)

	// A provider that failed to initialize must never be resolvable.
	_, err = service.ResolveProvider("stub-misconfigured")
	var notFoundErr *ProviderNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestPaymentService_ResolveProvider_NotFound(t *testing.T) {
	service := NewPaymentService(NewEventStore(), nil)

	_, err := service.ResolveProvider("unknown")

	var notFoundErr *ProviderNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "unknown", notFoundErr.ProviderKey)
}

func TestPaymentService_ListProviders_RegistrationOrder(t *testing.T) {
	first := &stubProvider{key: "stub-order-a"}
	second := &stubProvider{key: "stub-order-b"}
	third := &stubProvider{key: "stub-order-c"}
	registerStub(t, first)
	registerStub(t, second)
	registerStub(t, third)

	service := NewPaymentService(NewEventStore(), nil)
	require.NoError(t, service.AddProvider("stub-order-b", nil))
	require.NoError(t, service.AddProvider("stub-order-c", nil))
	require.NoError(t, service.AddProvider("stub-order-a", nil))

	providers := service.ListProviders()
	require.Len(t, providers, 3)
	assert.Equal(t, "stub-order-b", providers[0].Key())
	assert.Equal(t, "stub-order-c", providers[1].Key())
	assert.Equal(t, "stub-order-a", providers[2].Key())
}

func TestPaymentService_Checkout(t *testing.T) {
	stub := &stubProvider{key: "stub-checkout", currencies: []string{"USD"}}
	registerStub(t, stub)

	service := NewPaymentService(NewEventStore(), nil)
	require.NoError(t, service.AddProvider("stub-checkout", nil))

	session, err := service.Checkout(context.Background(), []byte(`{
		"provider": "stub-checkout",
		"amount": 42.5,
		"currency": "usd",
		"customerId": "cust_7"
	}`))

	require.NoError(t, err)
	assert.Equal(t, "stub-checkout", session.Provider)
	assert.Equal(t, "stub-checkout_session_1", session.ID)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestPaymentService_Checkout_ValidationError(t *testing.T) {
	service := NewPaymentService(NewEventStore(), nil)

	_, err := service.Checkout(context.Background(), []byte(`{"amount": 10}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "provider", validationErr.Field)
}

func TestPaymentService_Checkout_UnknownProvider(t *testing.T) {
	service := NewPaymentService(NewEventStore(), nil)

	_, err := service.Checkout(context.Background(), []byte(`{
		"provider": "unknown-provider",
		"amount": 10,
		"currency": "TRY",
		"customerId": "c"
	}`))

	var notFoundErr *ProviderNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "unknown-provider", notFoundErr.ProviderKey)
}

func TestPaymentService_Checkout_ProviderErrorPropagatesUntouched(t *testing.T) {
	wantErr := &ProviderCheckoutError{Provider: "stub-failing", Message: "currency X is not supported"}
	stub := &stubProvider{key: "stub-failing", createErr: wantErr}
	registerStub(t, stub)

	service := NewPaymentService(NewEventStore(), nil)
	require.NoError(t, service.AddProvider("stub-failing", nil))

	_, err := service.Checkout(context.Background(), []byte(`{
		"provider": "stub-failing",
		"amount": 10,
		"currency": "USD",
		"customerId": "c"
	}`))

	assert.True(t, errors.Is(err, wantErr) || err == wantErr)

	var checkoutErr *ProviderCheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, "stub-failing", checkoutErr.Provider)
}
