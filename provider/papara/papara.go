package papara

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
	providerKey = "papara"
	displayName = "Papara"

	defaultCheckoutBaseURL = "https://merchant.test.papara.com/checkout"
	sessionTTL             = 15 * time.Minute
	signatureHeader        = "X-Papara-Signature"

	sessionIDPrefix = "papara_"
	eventIDPrefix   = "papara_evt_"
)

var supportedCurrencies = []string{"TRY"}

// PaparaProvider implements the provider.PaymentProvider interface for Papara
type PaparaProvider struct {
	merchantID      string
	apiKey          string
	webhookSecret   string
	checkoutBaseURL string
	sessionTTL      time.Duration
	now             func() time.Time
}

// NewProvider creates a new Papara payment provider
func NewProvider() provider.PaymentProvider {
	return &PaparaProvider{
		checkoutBaseURL: defaultCheckoutBaseURL,
		sessionTTL:      sessionTTL,
		now:             time.Now,
	}
}

// Key returns the provider identifier
func (p *PaparaProvider) Key() string {
	return providerKey
}

// DisplayName returns the human-readable provider name
func (p *PaparaProvider) DisplayName() string {
	return displayName
}

// SupportedCurrencies returns the currency codes Papara accepts
func (p *PaparaProvider) SupportedCurrencies() []string {
	currencies := make([]string, len(supportedCurrencies))
	copy(currencies, supportedCurrencies)
	return currencies
}

// SignatureHeader returns the header Papara signs webhook deliveries with
func (p *PaparaProvider) SignatureHeader() string {
	return signatureHeader
}

// Initialize sets up the Papara provider with authentication credentials
func (p *PaparaProvider) Initialize(conf map[string]string) error {
	p.merchantID = conf["merchantId"]
	p.apiKey = conf["apiKey"]

	if p.merchantID == "" || p.apiKey == "" {
		return &provider.ProviderConfigurationError{
			Provider: providerKey,
			Message:  "merchantId and apiKey are required",
		}
	}

	p.webhookSecret = conf["webhookSecret"]
	if baseURL := conf["checkoutBaseUrl"]; baseURL != "" {
		p.checkoutBaseURL = baseURL
	}

	return nil
}

// CreateCheckoutSession opens a new hosted checkout session. Papara settles
// in TRY only.
func (p *PaparaProvider) CreateCheckoutSession(ctx context.Context, request provider.CheckoutRequest) (*provider.CheckoutSession, error) {
	if !p.supportsCurrency(request.Currency) {
		return nil, &provider.ProviderCheckoutError{
			Provider: providerKey,
			Message:  fmt.Sprintf("currency %s is not supported, only TRY is accepted", request.Currency),
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
			"status":   "created",
			"amount":   request.Amount,
			"currency": request.Currency,
		},
	}, nil
}

// VerifyWebhookSignature checks the X-Papara-Signature header against the
// HMAC-SHA256 digest of the raw body
func (p *PaparaProvider) VerifyWebhookSignature(body []byte, headers map[string]string) bool {
	signature := provider.HeaderValue(headers, signatureHeader)
	return provider.VerifyWebhookSignature(p.webhookSecret, body, signature)
}

// ParseWebhookEvent decodes a Papara webhook delivery into a normalized event
func (p *PaparaProvider) ParseWebhookEvent(body []byte) (*provider.PaymentEvent, error) {
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

	if id, ok := payload["transactionId"].(string); ok && id != "" {
		event.ID = id
	} else {
		event.ID = eventIDPrefix + uuid.NewString()
	}

	if status, ok := payload["status"].(string); ok && status != "" {
		event.Type = status
	}

	return event, nil
}

func (p *PaparaProvider) supportsCurrency(currency string) bool {
	for _, supported := range supportedCurrencies {
		if supported == currency {
			return true
		}
	}
	return false
}
