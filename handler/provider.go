package handler

import (
	"net/http"

	"github.com/evgolabs/evpay/infra/response"
	"github.com/evgolabs/evpay/provider"
)

// ProviderHandler exposes the configured provider set
type ProviderHandler struct {
	paymentService *provider.PaymentService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(paymentService *provider.PaymentService) *ProviderHandler {
	return &ProviderHandler{paymentService: paymentService}
}

// List returns all configured providers in registration order
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	providers := h.paymentService.ListProviders()

	items := make([]map[string]any, 0, len(providers))
	for _, p := range providers {
		items = append(items, map[string]any{
			"key":                 p.Key(),
			"displayName":         p.DisplayName(),
			"supportedCurrencies": p.SupportedCurrencies(),
		})
	}

	response.Success(w, http.StatusOK, "Providers retrieved", map[string]any{
		"providers": items,
		"count":     len(items),
	})
}
