package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/evgolabs/evpay/handler"
	"github.com/evgolabs/evpay/infra/opensearch"
	"github.com/evgolabs/evpay/provider"

	// Import for side-effect registration
	_ "github.com/evgolabs/evpay/provider/iyzico"
	_ "github.com/evgolabs/evpay/provider/papara"
	_ "github.com/evgolabs/evpay/provider/stripe"
)

// Routes registers all API routes. osLogger may be nil when OpenSearch
// logging is disabled.
func Routes(r chi.Router, paymentService *provider.PaymentService, osLogger *opensearch.Logger) {
	checkoutHandler := handler.NewCheckoutHandler(paymentService, osLogger)
	webhookHandler := handler.NewWebhookHandler(paymentService, osLogger)
	providerHandler := handler.NewProviderHandler(paymentService)

	r.Get("/health", handler.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/checkout", checkoutHandler.Checkout)
		r.Get("/providers", providerHandler.List)

		r.Route("/webhooks", func(r chi.Router) {
			r.Get("/events", webhookHandler.ListEvents)
			r.Delete("/events", webhookHandler.ClearEvents)
		})
	})

	// Webhook delivery endpoint for payment notifications
	r.Route("/webhooks", func(r chi.Router) {
		r.Post("/{provider}", webhookHandler.HandleWebhook)
	})
}
