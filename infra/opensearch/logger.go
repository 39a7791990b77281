package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// Logger ships payment activity documents to OpenSearch
type Logger struct {
	client *Client
}

// NewLogger creates a new OpenSearch logger
func NewLogger(client *Client) *Logger {
	return &Logger{client: client}
}

// IndexWebhookEvent indexes a webhook verification result
func (l *Logger) IndexWebhookEvent(ctx context.Context, doc any) error {
	return l.index(ctx, IndexWebhookEvents, doc)
}

// IndexCheckoutSession indexes a created checkout session
func (l *Logger) IndexCheckoutSession(ctx context.Context, doc any) error {
	return l.index(ctx, IndexCheckoutSessions, doc)
}

// IndexSystemLog indexes a structured system log entry
func (l *Logger) IndexSystemLog(ctx context.Context, doc any) error {
	return l.index(ctx, IndexSystemLogs, doc)
}

func (l *Logger) index(ctx context.Context, indexName string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index: indexName,
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, l.client.GetClient())
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index document into %s: %s", indexName, res.String())
	}

	return nil
}
