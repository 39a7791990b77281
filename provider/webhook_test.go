package provider

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStore_AppendListClear(t *testing.T) {
	store := NewEventStore()

	assert.Equal(t, 0, store.Len())

	store.Append(WebhookVerificationResult{PaymentEvent: PaymentEvent{ID: "evt_1"}})
	store.Append(WebhookVerificationResult{PaymentEvent: PaymentEvent{ID: "evt_2"}})

	events := store.List()
	require.Len(t, events, 2)
	assert.Equal(t, "evt_1", events[0].ID)
	assert.Equal(t, "evt_2", events[1].ID)

	// List returns a snapshot: mutating it must not affect the store.
	events[0].ID = "mutated"
	assert.Equal(t, "evt_1", store.List()[0].ID)

	store.Clear()
	assert.Equal(t, 0, store.Len())
}

func TestEventStore_ConcurrentAppends(t *testing.T) {
	store := NewEventStore()

	const goroutines = 32
	const perGoroutine = 25

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				store.Append(WebhookVerificationResult{
					PaymentEvent: PaymentEvent{ID: fmt.Sprintf("evt_%d_%d", n, j)},
				})
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, store.Len())
}

func TestProcessWebhook_VerifiedDelivery(t *testing.T) {
	stub := &stubProvider{key: "stub-webhook-ok"}
	registerStub(t, stub)

	store := NewEventStore()
	service := NewPaymentService(store, nil)
	require.NoError(t, service.AddProvider("stub-webhook-ok", map[string]string{"webhookSecret": "topsecret"}))

	body := []byte(`{"eventId":"e1","eventType":"payment.completed"}`)
	signature := ComputeWebhookSignature("topsecret", body)

	result, err := service.ProcessWebhook(context.Background(), "stub-webhook-ok", body, map[string]string{
		"X-Stub-Signature": signature,
	})

	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, signature, result.Signature)
	assert.Equal(t, string(body), result.RawBody)
	assert.False(t, result.ReceivedAt.IsZero())
	assert.Equal(t, 1, store.Len())
}

func TestProcessWebhook_BadSignatureStillRecorded(t *testing.T) {
	stub := &stubProvider{key: "stub-webhook-bad"}
	registerStub(t, stub)

	store := NewEventStore()
	service := NewPaymentService(store, nil)
	require.NoError(t, service.AddProvider("stub-webhook-bad", map[string]string{"webhookSecret": "topsecret"}))

	body := []byte(`{"eventId":"e2"}`)

	result, err := service.ProcessWebhook(context.Background(), "stub-webhook-bad", body, map[string]string{
		"X-Stub-Signature": ComputeWebhookSignature("wrong-secret", body),
	})

	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Equal(t, 1, store.Len(), "rejected deliveries are recorded, never dropped")

	// A delivery with no signature header at all is also recorded.
	result, err = service.ProcessWebhook(context.Background(), "stub-webhook-bad", body, nil)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.Empty(t, result.Signature)
	assert.Equal(t, 2, store.Len())
}

func TestProcessWebhook_UnknownProvider(t *testing.T) {
	store := NewEventStore()
	service := NewPaymentService(store, nil)

	_, err := service.ProcessWebhook(context.Background(), "nobody", []byte(`{}`), nil)

	var notFoundErr *ProviderNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "nobody", notFoundErr.ProviderKey)
	assert.Equal(t, 0, store.Len())
}

func TestProcessWebhook_ParseFailure(t *testing.T) {
	parseErr := &ProviderCheckoutError{Provider: "stub-webhook-broken", Message: "unable to parse webhook payload"}
	stub := &stubProvider{key: "stub-webhook-broken", parseErr: parseErr}
	registerStub(t, stub)

	store := NewEventStore()
	service := NewPaymentService(store, nil)
	require.NoError(t, service.AddProvider("stub-webhook-broken", nil))

	_, err := service.ProcessWebhook(context.Background(), "stub-webhook-broken", []byte(`not json`), nil)

	var processingErr *WebhookProcessingError
	require.ErrorAs(t, err, &processingErr)
	assert.Equal(t, "stub-webhook-broken", processingErr.Provider)
	assert.ErrorIs(t, err, parseErr)
	assert.Equal(t, 0, store.Len(), "unparseable deliveries are not recorded")
}

func TestPaymentService_ListAndClearWebhookEvents(t *testing.T) {
	stub := &stubProvider{key: "stub-webhook-admin"}
	registerStub(t, stub)

	service := NewPaymentService(NewEventStore(), nil)
	require.NoError(t, service.AddProvider("stub-webhook-admin", nil))

	for i := 0; i < 3; i++ {
		_, err := service.ProcessWebhook(context.Background(), "stub-webhook-admin", []byte(`{}`), nil)
		require.NoError(t, err)
	}

	assert.Len(t, service.ListWebhookEvents(), 3)

	service.ClearWebhookEvents()
	assert.Empty(t, service.ListWebhookEvents())
}
