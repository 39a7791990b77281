package provider

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDBAuditLogger_LogCheckout(t *testing.T) {
	db := openTestDB(t)

	auditor, err := NewDBAuditLogger(db)
	require.NoError(t, err)

	session := &CheckoutSession{
		ID:          "cs_test_abc",
		Provider:    "stripe",
		RedirectURL: "https://checkout.example/cs_test_abc",
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		RawResponse: map[string]any{"status": "open"},
	}

	require.NoError(t, auditor.LogCheckout(context.Background(), session))

	var provider, rawResponse string
	err = db.QueryRow(`SELECT provider, raw_response FROM checkout_sessions WHERE id = ?`, "cs_test_abc").
		Scan(&provider, &rawResponse)
	require.NoError(t, err)
	assert.Equal(t, "stripe", provider)
	assert.Contains(t, rawResponse, `"status":"open"`)
}

func TestDBAuditLogger_LogWebhook(t *testing.T) {
	db := openTestDB(t)

	auditor, err := NewDBAuditLogger(db)
	require.NoError(t, err)

	result := &WebhookVerificationResult{
		PaymentEvent: PaymentEvent{
			ID:       "evt_1",
			Provider: "iyzico",
			Type:     "payment.completed",
		},
		Verified:   true,
		Signature:  "abc123",
		ReceivedAt: time.Now(),
		RawBody:    `{"eventId":"evt_1"}`,
	}

	require.NoError(t, auditor.LogWebhook(context.Background(), result))

	result.Verified = false
	result.ID = "evt_2"
	require.NoError(t, auditor.LogWebhook(context.Background(), result))

	var verifiedCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM webhook_events WHERE verified = 1`).Scan(&verifiedCount)
	require.NoError(t, err)
	assert.Equal(t, 1, verifiedCount)

	var total int
	err = db.QueryRow(`SELECT COUNT(*) FROM webhook_events WHERE provider = ?`, "iyzico").Scan(&total)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestNewDBAuditLogger_IdempotentSchema(t *testing.T) {
	db := openTestDB(t)

	_, err := NewDBAuditLogger(db)
	require.NoError(t, err)

	// Creating the schema again against the same database must not fail.
	_, err = NewDBAuditLogger(db)
	assert.NoError(t, err)
}
