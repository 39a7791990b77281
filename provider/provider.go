package provider

import (
	"context"
	"time"
)

// CheckoutRequest contains all information required to open a checkout session.
// Currency is normalized to uppercase before any provider sees it.
type CheckoutRequest struct {
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	CustomerID  string         `json:"customerId"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// CheckoutSession is a provider-issued redirect target for a single pending
// payment attempt. Sessions are values: expiry is advisory and nothing in
// this service invalidates them.
type CheckoutSession struct {
	ID          string         `json:"id"`
	Provider    string         `json:"provider"`
	RedirectURL string         `json:"redirectUrl"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	RawResponse map[string]any `json:"rawResponse,omitempty"`
}

// PaymentEvent is a normalized webhook notification. CreatedAt is stamped at
// parse time; timestamps embedded in the payload are never trusted.
type PaymentEvent struct {
	ID        string         `json:"id"`
	Provider  string         `json:"provider"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

// WebhookVerificationResult is the full record kept for every inbound
// webhook, verified or not. RawBody is retained for audit and replay.
type WebhookVerificationResult struct {
	PaymentEvent
	Verified   bool      `json:"verified"`
	Signature  string    `json:"signature,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
	RawBody    string    `json:"rawBody"`
}

// PaymentProvider defines the interface that all payment network adapters
// must implement.
type PaymentProvider interface {
	// Key returns the unique provider identifier (e.g. "stripe").
	Key() string

	// DisplayName returns the human-readable provider name.
	DisplayName() string

	// SupportedCurrencies returns the uppercase currency codes the provider
	// accepts.
	SupportedCurrencies() []string

	// SignatureHeader returns the HTTP header the provider signs webhook
	// deliveries with.
	SignatureHeader() string

	// Initialize sets up the provider with credentials and configuration.
	// It fails fast when required credentials are missing.
	Initialize(conf map[string]string) error

	// CreateCheckoutSession opens a new checkout session for the request.
	CreateCheckoutSession(ctx context.Context, request CheckoutRequest) (*CheckoutSession, error)

	// VerifyWebhookSignature reports whether the raw body matches the
	// signature header under the configured webhook secret. A missing
	// header, missing secret or digest mismatch yields false, never an
	// error.
	VerifyWebhookSignature(body []byte, headers map[string]string) bool

	// ParseWebhookEvent decodes the raw body into a normalized event.
	ParseWebhookEvent(body []byte) (*PaymentEvent, error)
}

// ProviderFactory is a function type that creates a new PaymentProvider
type ProviderFactory func() PaymentProvider
