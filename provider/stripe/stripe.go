package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"

	"github.com/evgolabs/evpay/provider"
)

const (
	providerKey = "stripe"
	displayName = "Stripe"

	defaultCheckoutBaseURL = "https://dashboard.stripe.com/test/checkout/sessions"
	sessionTTL             = 24 * time.Hour
	signatureHeader        = "Stripe-Signature"

	sessionIDPrefix = "cs_test_"
	eventIDPrefix   = "evt_"
)

var supportedCurrencies = []string{
	strings.ToUpper(string(stripe.CurrencyUSD)),
	strings.ToUpper(string(stripe.CurrencyEUR)),
	strings.ToUpper(string(stripe.CurrencyGBP)),
	strings.ToUpper(string(stripe.CurrencyTRY)),
}

// StripeProvider implements the provider.PaymentProvider interface for Stripe
type StripeProvider struct {
	secretKey       string
	publishableKey  string
	webhookSecret   string
	checkoutBaseURL string
	sessionTTL      time.Duration
	now             func() time.Time
}

// NewProvider creates a new Stripe payment provider
func NewProvider() provider.PaymentProvider {
	return &StripeProvider{
		checkoutBaseURL: defaultCheckoutBaseURL,
		sessionTTL:      sessionTTL,
		now:             time.Now,
	}
}

// Key returns the provider identifier
func (p *StripeProvider) Key() string {
	return providerKey
}

// DisplayName returns the human-readable provider name
func (p *StripeProvider) DisplayName() string {
	return displayName
}

// SupportedCurrencies returns the currency codes Stripe accepts
func (p *StripeProvider) SupportedCurrencies() []string {
	currencies := make([]string, len(supportedCurrencies))
	copy(currencies, supportedCurrencies)
	return currencies
}

// SignatureHeader returns the header Stripe signs webhook deliveries with
func (p *StripeProvider) SignatureHeader() string {
	return signatureHeader
}

// Initialize sets up the Stripe provider with authentication credentials
func (p *StripeProvider) Initialize(conf map[string]string) error {
	p.secretKey = conf["secretKey"]
	p.publishableKey = conf["publishableKey"]

	if p.secretKey == "" || p.publishableKey == "" {
		return &provider.ProviderConfigurationError{
			Provider: providerKey,
			Message:  "secretKey and publishableKey are required",
		}
	}

	p.webhookSecret = conf["webhookSecret"]
	if baseURL := conf["checkoutBaseUrl"]; baseURL != "" {
		p.checkoutBaseURL = baseURL
	}

	return nil
}

// CreateCheckoutSession opens a new hosted checkout session
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, request provider.CheckoutRequest) (*provider.CheckoutSession, error) {
	if !p.supportsCurrency(request.Currency) {
		return nil, &provider.ProviderCheckoutError{
			Provider: providerKey,
			Message:  fmt.Sprintf("currency %s is not supported", request.Currency),
		}
	}

	if request.Amount <= 0 {
		return nil, &provider.ProviderCheckoutError{
			Provider: providerKey,
			Message:  "checkout requires a positive amount",
		}
	}

	sessionID := sessionIDPrefix + uuid.NewString()
	redirectURL, err := url.JoinPath(p.checkoutBaseURL, sessionID)
	if err != nil {
		return nil, &provider.ProviderCheckoutError{
			Provider: providerKey,
			Message:  "failed to create checkout session",
			Cause:    err,
		}
	}

	return &provider.CheckoutSession{
		ID:          sessionID,
		Provider:    providerKey,
		RedirectURL: redirectURL,
		ExpiresAt:   p.now().Add(p.sessionTTL),
		RawResponse: map[string]any{
			"status":       string(stripe.CheckoutSessionStatusOpen),
			"amount_total": request.Amount,
			"currency":     strings.ToLower(request.Currency),
		},
	}, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header against the
// HMAC-SHA256 digest of the raw body
func (p *StripeProvider) VerifyWebhookSignature(body []byte, headers map[string]string) bool {
	signature := provider.HeaderValue(headers, signatureHeader)
	return provider.VerifyWebhookSignature(p.webhookSecret, body, signature)
}

// ParseWebhookEvent decodes a Stripe webhook delivery into a normalized event
func (p *StripeProvider) ParseWebhookEvent(body []byte) (*provider.PaymentEvent, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &provider.ProviderCheckoutError{
			Provider: providerKey,
			Message:  "unable to parse webhook payload",
			Cause:    err,
		}
	}

	event := &provider.PaymentEvent{
		Provider:  providerKey,
		Type:      "unknown",
		Payload:   payload,
		CreatedAt: p.now(),
	}

	if id, ok := payload["id"].(string); ok && id != "" {
		event.ID = id
	} else {
		event.ID = eventIDPrefix + uuid.NewString()
	}

	if eventType, ok := payload["type"].(string); ok && eventType != "" {
		event.Type = eventType
	}

	return event, nil
}

func (p *StripeProvider) supportsCurrency(currency string) bool {
	for _, supported := range supportedCurrencies {
		if supported == currency {
			return true
		}
	}
	return false
}
