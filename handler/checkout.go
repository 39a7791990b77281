package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/evgolabs/evpay/infra/logger"
	"github.com/evgolabs/evpay/infra/opensearch"
	"github.com/evgolabs/evpay/infra/response"
	"github.com/evgolabs/evpay/provider"
)

// maxCheckoutBodySize bounds checkout request bodies.
const maxCheckoutBodySize = 1 << 20

// CheckoutHandler handles checkout session HTTP requests
type CheckoutHandler struct {
	paymentService *provider.PaymentService
	osLogger       *opensearch.Logger
}

// NewCheckoutHandler creates a new checkout handler. osLogger may be nil
// when OpenSearch logging is disabled.
func NewCheckoutHandler(paymentService *provider.PaymentService, osLogger *opensearch.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		paymentService: paymentService,
		osLogger:       osLogger,
	}
}

// Checkout opens a checkout session at the requested provider
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCheckoutBodySize))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	session, err := h.paymentService.Checkout(ctx, body)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	logger.Info("Checkout session created", logger.LogContext{
		Provider: session.Provider,
		Fields: map[string]any{
			"session_id": session.ID,
			"expires_at": session.ExpiresAt,
		},
	})

	if h.osLogger != nil {
		go func(s *provider.CheckoutSession) {
			if err := h.osLogger.IndexCheckoutSession(context.Background(), s); err != nil {
				logger.Warn("Failed to index checkout session", logger.LogContext{
					Provider: s.Provider,
					Fields:   map[string]any{"session_id": s.ID, "error": err.Error()},
				})
			}
		}(session)
	}

	response.Success(w, http.StatusCreated, "Checkout session created", map[string]any{
		"session": session,
	})
}

func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, err error) {
	var notFoundErr *provider.ProviderNotFoundError
	var checkoutErr *provider.ProviderCheckoutError
	var configErr *provider.ProviderConfigurationError
	var validationErr *provider.ValidationError

	switch {
	case errors.As(err, &notFoundErr):
		response.ProviderError(w, http.StatusBadRequest, "Unknown payment provider", notFoundErr.ProviderKey, err)
	case errors.As(err, &checkoutErr):
		response.Error(w, http.StatusBadGateway, "Checkout failed at payment provider", err)
	case errors.As(err, &configErr):
		response.Error(w, http.StatusInternalServerError, "Payment provider is misconfigured", err)
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, "Invalid checkout request", err)
	default:
		logger.Error("Unexpected checkout failure", err)
		response.Error(w, http.StatusInternalServerError, "Unexpected error", nil)
	}
}
