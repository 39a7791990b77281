package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/evgolabs/evpay/infra/logger"
	"github.com/evgolabs/evpay/infra/opensearch"
	"github.com/evgolabs/evpay/infra/response"
	"github.com/evgolabs/evpay/provider"
)

// maxWebhookBodySize bounds webhook request bodies.
const maxWebhookBodySize = 1 << 20

// WebhookHandler handles inbound payment webhook notifications
type WebhookHandler struct {
	paymentService *provider.PaymentService
	osLogger       *opensearch.Logger
}

// NewWebhookHandler creates a new webhook handler. osLogger may be nil when
// OpenSearch logging is disabled.
func NewWebhookHandler(paymentService *provider.PaymentService, osLogger *opensearch.Logger) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
		osLogger:       osLogger,
	}
}

// HandleWebhook verifies and records a provider webhook delivery. A failed
// signature check is returned as verified=false, not an error; the caller
// decides whether to reject the event.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	providerName := chi.URLParam(r, "provider")
	if providerName == "" {
		response.Error(w, http.StatusBadRequest, "Provider parameter is required", nil)
		return
	}

	// The raw body bytes are what the provider signed; read them before any
	// decoding.
	rawBody, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	result, err := h.paymentService.ProcessWebhook(ctx, providerName, rawBody, headers)
	if err != nil {
		h.writeWebhookError(w, providerName, err)
		return
	}

	if result.Verified {
		logger.Info("Webhook verified and recorded", logger.LogContext{
			Provider: result.Provider,
			Fields:   map[string]any{"event_id": result.ID, "event_type": result.Type},
		})
	} else {
		logger.Warn("Webhook recorded with failed verification", logger.LogContext{
			Provider: result.Provider,
			Fields:   map[string]any{"event_id": result.ID, "event_type": result.Type},
		})
	}

	if h.osLogger != nil {
		go func(res *provider.WebhookVerificationResult) {
			if err := h.osLogger.IndexWebhookEvent(context.Background(), res); err != nil {
				logger.Warn("Failed to index webhook event", logger.LogContext{
					Provider: res.Provider,
					Fields:   map[string]any{"event_id": res.ID, "error": err.Error()},
				})
			}
		}(result)
	}

	response.Success(w, http.StatusOK, "Webhook processed", result)
}

// ListEvents returns all recorded webhook verification results
func (h *WebhookHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.paymentService.ListWebhookEvents()

	response.Success(w, http.StatusOK, "Webhook events retrieved", map[string]any{
		"events": events,
		"count":  len(events),
	})
}

// ClearEvents resets the webhook event log
func (h *WebhookHandler) ClearEvents(w http.ResponseWriter, r *http.Request) {
	h.paymentService.ClearWebhookEvents()

	logger.Info("Webhook event log cleared")

	response.Success(w, http.StatusOK, "Webhook events cleared", nil)
}

func (h *WebhookHandler) writeWebhookError(w http.ResponseWriter, providerName string, err error) {
	var notFoundErr *provider.ProviderNotFoundError
	var processingErr *provider.WebhookProcessingError

	switch {
	case errors.As(err, &notFoundErr):
		response.ProviderError(w, http.StatusBadRequest, "Unknown payment provider", notFoundErr.ProviderKey, err)
	case errors.As(err, &processingErr):
		logger.Error("Webhook processing failed", err, logger.LogContext{Provider: providerName})
		response.Error(w, http.StatusUnprocessableEntity, "Webhook processing failed", err)
	default:
		logger.Error("Unexpected webhook failure", err, logger.LogContext{Provider: providerName})
		response.Error(w, http.StatusInternalServerError, "Unexpected error", nil)
	}
}
