package stripe

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgolabs/evpay/provider"
)

func newTestProvider(t *testing.T) *StripeProvider {
	t.Helper()

	p := NewProvider().(*StripeProvider)
	require.NoError(t, p.Initialize(map[string]string{
		"secretKey":      "sk_test_abc",
		"publishableKey": "pk_test_abc",
		"webhookSecret":  "whsec_abc",
	}))
	return p
}

func TestStripeProvider_Identity(t *testing.T) {
	p := NewProvider()

	assert.Equal(t, "stripe", p.Key())
	assert.Equal(t, "Stripe", p.DisplayName())
	assert.Equal(t, "Stripe-Signature", p.SignatureHeader())
	assert.Equal(t, []string{"USD", "EUR", "GBP", "TRY"}, p.SupportedCurrencies())
}

func TestStripeProvider_Initialize(t *testing.T) {
	tests := []struct {
		name    string
		conf    map[string]string
		wantErr bool
	}{
		{
			name: "valid credentials",
			conf: map[string]string{"secretKey": "sk_test_1", "publishableKey": "pk_test_1"},
		},
		{
			name:    "missing secret key",
			conf:    map[string]string{"publishableKey": "pk_test_1"},
			wantErr: true,
		},
		{
			name:    "missing publishable key",
			conf:    map[string]string{"secretKey": "sk_test_1"},
			wantErr: true,
		},
		{
			name:    "empty configuration",
			conf:    map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProvider().Initialize(tt.conf)
			if tt.wantErr {
				var configErr *provider.ProviderConfigurationError
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, "stripe", configErr.Provider)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStripeProvider_CreateCheckoutSession(t *testing.T) {
	p := newTestProvider(t)
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return frozen }

	session, err := p.CreateCheckoutSession(context.Background(), provider.CheckoutRequest{
		Amount:     100,
		Currency:   "USD",
		CustomerID: "cust_1",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.ID, "cs_test_"))
	assert.Equal(t, "stripe", session.Provider)
	assert.True(t, strings.HasPrefix(session.RedirectURL, defaultCheckoutBaseURL+"/"))
	assert.True(t, strings.HasSuffix(session.RedirectURL, session.ID))
	assert.Equal(t, frozen.Add(24*time.Hour), session.ExpiresAt)
	assert.Equal(t, "open", session.RawResponse["status"])
	assert.Equal(t, 100.0, session.RawResponse["amount_total"])
	assert.Equal(t, "usd", session.RawResponse["currency"])
}

func TestStripeProvider_CreateCheckoutSession_UnsupportedCurrency(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.CreateCheckoutSession(context.Background(), provider.CheckoutRequest{
		Amount:     100,
		Currency:   "JPY",
		CustomerID: "cust_1",
	})

	var checkoutErr *provider.ProviderCheckoutError
	require.ErrorAs(t, err, &checkoutErr)
	assert.Equal(t, "stripe", checkoutErr.Provider)
	assert.Contains(t, checkoutErr.Message, "JPY")
}

func TestStripeProvider_VerifyWebhookSignature(t *testing.T) {
	p := newTestProvider(t)
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := provider.ComputeWebhookSignature("whsec_abc", body)

	assert.True(t, p.VerifyWebhookSignature(body, map[string]string{"Stripe-Signature": signature}))
	assert.True(t, p.VerifyWebhookSignature(body, map[string]string{"stripe-signature": signature}))
	assert.False(t, p.VerifyWebhookSignature(body, map[string]string{"Stripe-Signature": "bad"}))
	assert.False(t, p.VerifyWebhookSignature(body, nil))
}

func TestStripeProvider_ParseWebhookEvent(t *testing.T) {
	p := newTestProvider(t)

	event, err := p.ParseWebhookEvent([]byte(`{"id":"evt_99","type":"checkout.session.completed","amount":100}`))
	require.NoError(t, err)
	assert.Equal(t, "evt_99", event.ID)
	assert.Equal(t, "stripe", event.Provider)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Equal(t, 100.0, event.Payload["amount"])
}

func TestStripeProvider_ParseWebhookEvent_Fallbacks(t *testing.T) {
	p := newTestProvider(t)

	event, err := p.ParseWebhookEvent([]byte(`{"amount":50}`))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(event.ID, "evt_"))
	assert.Equal(t, "unknown", event.Type)
}

func TestStripeProvider_ParseWebhookEvent_InvalidJSON(t *testing.T) {
	p := newTestProvider(t)

	_, err := p.ParseWebhookEvent([]byte(`not json`))
	assert.Error(t, err)
}
