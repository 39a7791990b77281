package provider

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// AuditLogger persists checkout and webhook activity for later review.
// Implementations must never fail the request path: callers log audit errors
// and continue.
type AuditLogger interface {
	LogCheckout(ctx context.Context, session *CheckoutSession) error
	LogWebhook(ctx context.Context, result *WebhookVerificationResult) error
}

// NopAuditLogger discards all audit records. Used when no audit database is
// configured and in tests.
type NopAuditLogger struct{}

func (NopAuditLogger) LogCheckout(ctx context.Context, session *CheckoutSession) error {
	return nil
}

func (NopAuditLogger) LogWebhook(ctx context.Context, result *WebhookVerificationResult) error {
	return nil
}

// DBAuditLogger implements AuditLogger on a SQL database.
type DBAuditLogger struct {
	db *sql.DB
}

// NewDBAuditLogger creates the audit tables if needed and returns a logger
// writing to db.
func NewDBAuditLogger(db *sql.DB) (*DBAuditLogger, error) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS checkout_sessions (
			id TEXT PRIMARY KEY,
			provider TEXT NOT NULL,
			redirect_url TEXT NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			raw_response TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS webhook_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT NOT NULL,
			provider TEXT NOT NULL,
			event_type TEXT NOT NULL,
			verified INTEGER NOT NULL,
			signature TEXT,
			received_at TIMESTAMP NOT NULL,
			raw_body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_webhook_events_provider ON webhook_events(provider)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("failed to create audit schema: %w", err)
		}
	}

	return &DBAuditLogger{db: db}, nil
}

// LogCheckout records a created checkout session.
func (l *DBAuditLogger) LogCheckout(ctx context.Context, session *CheckoutSession) error {
	rawResponse, err := json.Marshal(session.RawResponse)
	if err != nil {
		return fmt.Errorf("failed to marshal raw response: %w", err)
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO checkout_sessions (id, provider, redirect_url, expires_at, raw_response)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Provider, session.RedirectURL, session.ExpiresAt, string(rawResponse),
	)
	if err != nil {
		return fmt.Errorf("failed to log checkout session: %w", err)
	}

	return nil
}

// LogWebhook records a webhook verification result, verified or not.
func (l *DBAuditLogger) LogWebhook(ctx context.Context, result *WebhookVerificationResult) error {
	verified := 0
	if result.Verified {
		verified = 1
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO webhook_events (event_id, provider, event_type, verified, signature, received_at, raw_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.Provider, result.Type, verified, result.Signature, result.ReceivedAt, result.RawBody,
	)
	if err != nil {
		return fmt.Errorf("failed to log webhook event: %w", err)
	}

	return nil
}
