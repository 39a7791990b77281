package provider

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/evgolabs/evpay/infra/logger"
	"github.com/evgolabs/evpay/infra/validate"
)

// PaymentService holds the configured provider set and orchestrates checkout
// and webhook processing. The configured set is static after startup;
// resolution either succeeds or fails explicitly, never silently falls back.
type PaymentService struct {
	providers map[string]PaymentProvider
	order     []string
	mu        sync.RWMutex

	validate *validator.Validate
	events   *EventStore
	auditor  AuditLogger
}

// NewPaymentService creates a payment service around the given event store
// and audit logger. A nil store gets a fresh in-memory one; a nil auditor is
// replaced with a no-op.
func NewPaymentService(events *EventStore, auditor AuditLogger) *PaymentService {
	if events == nil {
		events = NewEventStore()
	}
	if auditor == nil {
		auditor = NopAuditLogger{}
	}
	return &PaymentService{
		providers: make(map[string]PaymentProvider),
		validate:  validate.New(),
		events:    events,
		auditor:   auditor,
	}
}

// AddProvider creates the named provider from the default registry,
// initializes it with conf and adds it to the configured set. Initialization
// failures (missing credentials) keep the provider out of the set entirely.
func (s *PaymentService) AddProvider(name string, conf map[string]string) error {
	p, err := CreateProvider(name)
	if err != nil {
		return err
	}

	if err := p.Initialize(conf); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.providers[name]; !exists {
		s.order = append(s.order, name)
	}
	s.providers[name] = p

	return nil
}

// ResolveProvider returns the configured provider for key or a
// *ProviderNotFoundError carrying the offending key.
func (s *PaymentService) ResolveProvider(key string) (PaymentProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.providers[key]
	if !exists {
		return nil, &ProviderNotFoundError{ProviderKey: key}
	}

	return p, nil
}

// ListProviders returns all configured providers in registration order.
func (s *PaymentService) ListProviders() []PaymentProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	providers := make([]PaymentProvider, 0, len(s.order))
	for _, name := range s.order {
		providers = append(providers, s.providers[name])
	}

	return providers
}

// Checkout validates the raw request body, resolves the requested provider
// and opens a checkout session. Validation failures come back as
// *ValidationError; provider errors propagate untouched so the boundary can
// map them by kind.
func (s *PaymentService) Checkout(ctx context.Context, rawInput []byte) (*CheckoutSession, error) {
	input, err := ParseCheckoutInput(rawInput, s.validate)
	if err != nil {
		return nil, err
	}

	p, err := s.ResolveProvider(input.Provider)
	if err != nil {
		return nil, err
	}

	session, err := p.CreateCheckoutSession(ctx, input.ToCheckoutRequest())
	if err != nil {
		return nil, err
	}

	if auditErr := s.auditor.LogCheckout(ctx, session); auditErr != nil {
		logger.Warn("Failed to audit checkout session", logger.LogContext{
			Provider: p.Key(),
			Fields: map[string]any{
				"session_id": session.ID,
				"error":      auditErr.Error(),
			},
		})
	}

	return session, nil
}
