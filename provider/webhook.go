package provider

import (
	"context"
	"sync"
	"time"

	"github.com/evgolabs/evpay/infra/logger"
)

// EventStore is the process-wide append-only log of webhook verification
// results. It is injected into the PaymentService so tests can construct
// isolated stores. Appends are atomic; List returns a point-in-time copy.
type EventStore struct {
	mu     sync.Mutex
	events []WebhookVerificationResult
}

// NewEventStore creates an empty event store.
func NewEventStore() *EventStore {
	return &EventStore{}
}

// Append adds a result to the log. Insertion order is arrival order.
func (s *EventStore) Append(result WebhookVerificationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, result)
}

// List returns a snapshot of the log in insertion order.
func (s *EventStore) List() []WebhookVerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]WebhookVerificationResult, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

// Clear empties the log. Administrative reset only; nothing evicts entries
// automatically.
func (s *EventStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// Len returns the number of recorded results.
func (s *EventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// ProcessWebhook resolves the provider, verifies the delivery signature,
// parses the event and records the result. Verification failure does not
// abort processing: the record is appended with Verified=false and returned
// to the caller, who decides how to treat it at the boundary.
func (s *PaymentService) ProcessWebhook(ctx context.Context, providerKey string, rawBody []byte, headers map[string]string) (*WebhookVerificationResult, error) {
	p, err := s.ResolveProvider(providerKey)
	if err != nil {
		return nil, err
	}

	verified := p.VerifyWebhookSignature(rawBody, headers)

	// Parsing runs independently of the verification outcome: a spoofed or
	// malformed delivery is still evidence worth recording.
	event, err := p.ParseWebhookEvent(rawBody)
	if err != nil {
		return nil, &WebhookProcessingError{Provider: p.Key(), Cause: err}
	}

	result := WebhookVerificationResult{
		PaymentEvent: *event,
		Verified:     verified,
		Signature:    HeaderValue(headers, p.SignatureHeader()),
		ReceivedAt:   time.Now(),
		RawBody:      string(rawBody),
	}

	s.events.Append(result)

	if auditErr := s.auditor.LogWebhook(ctx, &result); auditErr != nil {
		logger.Warn("Failed to audit webhook event", logger.LogContext{
			Provider: p.Key(),
			Fields: map[string]any{
				"event_id": result.ID,
				"error":    auditErr.Error(),
			},
		})
	}

	return &result, nil
}

// ListWebhookEvents returns a snapshot of all recorded webhook results.
func (s *PaymentService) ListWebhookEvents() []WebhookVerificationResult {
	return s.events.List()
}

// ClearWebhookEvents resets the webhook event log.
func (s *PaymentService) ClearWebhookEvents() {
	s.events.Clear()
}
