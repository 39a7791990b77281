// Package provider implements a unified payment processing interface that
// abstracts multiple payment networks behind a single, consistent API.
//
// # Core Concepts
//
// The package is built around a few key types:
//
//   - PaymentProvider: the interface every payment network adapter implements
//   - PaymentService: resolves providers and orchestrates checkout and webhooks
//   - ProviderRegistry: maps provider keys to factories
//   - EventStore: the append-only log of webhook verification results
//
// # Basic Usage
//
// Creating a payment service and opening a checkout session:
//
//	service := provider.NewPaymentService(provider.NewEventStore(), nil)
//
//	err := service.AddProvider("iyzico", map[string]string{
//	    "apiKey":        "your-api-key",
//	    "secretKey":     "your-secret-key",
//	    "webhookSecret": "your-webhook-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := service.Checkout(ctx, rawJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(session.RedirectURL)
//
// # Provider Registration
//
// Adapters register themselves via init side effects:
//
//	import _ "github.com/evgolabs/evpay/provider/iyzico" // Auto-registers iyzico
//
// Or manually:
//
//	provider.Register("myprovider", func() provider.PaymentProvider {
//	    return &MyCustomProvider{}
//	})
//
// Registration makes a provider available; only AddProvider with valid
// credentials makes it resolvable. A provider whose Initialize fails is
// never added.
//
// # Webhook Handling
//
// ProcessWebhook verifies the delivery signature, parses the payload into a
// normalized PaymentEvent, and appends the result to the event log:
//
//	result, err := service.ProcessWebhook(ctx, "iyzico", rawBody, headers)
//	if err != nil {
//	    // unknown provider or unparseable payload
//	    return err
//	}
//	if !result.Verified {
//	    // recorded anyway; decide at the boundary how to treat it
//	}
//
// Verification and parsing are independent: a delivery that fails the
// signature check is still parsed and recorded with Verified=false.
//
// # Error Handling
//
// Failures are typed so HTTP handlers can map them with errors.As:
//
//   - ProviderNotFoundError: unknown or unconfigured provider key
//   - ProviderConfigurationError: missing credentials at Initialize
//   - ProviderCheckoutError: checkout rejected by the adapter
//   - WebhookProcessingError: unparseable webhook payload
//   - ValidationError: malformed checkout input
//
// # Thread Safety
//
// The PaymentService, ProviderRegistry, and EventStore are safe for
// concurrent use from multiple goroutines.
package provider
