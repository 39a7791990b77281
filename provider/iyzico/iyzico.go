package iyzico

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/evgolabs/evpay/provider"
)

const (
	providerKey = "iyzico"
	displayName = "Iyzico"

	defaultCheckoutBaseURL = "https://sandbox-iyzico-payments.example/checkout"
	sessionTTL             = 10 * time.Minute
	signatureHeader        = "X-Iyz-Signature"

	sessionIDPrefix = "iyz_"
	eventIDPrefix   = "iyz_evt_"
)

var supportedCurrencies = []string{"TRY", "USD", "EUR"}

// IyzicoProvider implements the provider.PaymentProvider interface for Iyzico
type IyzicoProvider struct {
	apiKey          string
	secretKey       string
	webhookSecret   string
	checkoutBaseURL string
	sessionTTL      time.Duration
	now             func() time.Time
}

// NewProvider creates a new Iyzico payment provider
func NewProvider() provider.PaymentProvider {
	return &IyzicoProvider{
		checkoutBaseURL: defaultCheckoutBaseURL,
		sessionTTL:      sessionTTL,
		now:             time.Now,
	}
}

// Key returns the provider identifier
func (p *IyzicoProvider) Key() string {
	return providerKey
}

// DisplayName returns the human-readable provider name
func (p *IyzicoProvider) DisplayName() string {
	return displayName
}

// SupportedCurrencies returns the currency codes Iyzico accepts
func (p *IyzicoProvider) SupportedCurrencies() []string {
	currencies := make([]string, len(supportedCurrencies))
	copy(currencies, supportedCurrencies)
	return currencies
}

// SignatureHeader returns the header Iyzico signs webhook deliveries with
func (p *IyzicoProvider) SignatureHeader() string {
	return signatureHeader
}

// Initialize sets up the Iyzico provider with authentication credentials
func (p *IyzicoProvider) Initialize(conf map[string]string) error {
	p.apiKey = conf["apiKey"]
	p.secretKey = conf["secretKey"]

	if p.apiKey == "" || p.secretKey == "" {
		return &provider.ProviderConfigurationError{
			Provider: providerKey,
			Message:  "apiKey and secretKey are required",
		}
	}

	p.webhookSecret = conf["webhookSecret"]
	if baseURL := conf["checkoutBaseUrl"]; baseURL != "" {
		p.checkoutBaseURL = baseURL
	}

	return nil
}

// CreateCheckoutSession opens a new hosted checkout session
func (p *IyzicoProvider) CreateCheckoutSession(ctx context.Context, request provider.CheckoutRequest) (*provider.CheckoutSession, error) {
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
			"status": "success",
			"locale": "tr",
			"price":  request.Amount,
		},
	}, nil
}

// VerifyWebhookSignature checks the X-Iyz-Signature header against the
// HMAC-SHA256 digest of the raw body
func (p *IyzicoProvider) VerifyWebhookSignature(body []byte, headers map[string]string) bool {
	signature := provider.HeaderValue(headers, signatureHeader)
	return provider.VerifyWebhookSignature(p.webhookSecret, body, signature)
}

// ParseWebhookEvent decodes an Iyzico webhook delivery into a normalized event
func (p *IyzicoProvider) ParseWebhookEvent(body []byte) (*provider.PaymentEvent, error) {
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

	if id, ok := payload["eventId"].(string); ok && id != "" {
		event.ID = id
	} else {
		event.ID = eventIDPrefix + uuid.NewString()
	}

	if eventType, ok := payload["eventType"].(string); ok && eventType != "" {
		event.Type = eventType
	}

	return event, nil
}

func (p *IyzicoProvider) supportsCurrency(currency string) bool {
	for _, supported := range supportedCurrencies {
		if supported == currency {
			return true
		}
	}
	return false
}
