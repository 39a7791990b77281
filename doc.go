// Package evpay provides a unified payment abstraction for electric vehicle
// charging services. It exposes a single checkout and webhook API over a set
// of pluggable payment providers, so applications never talk to a payment
// network directly.
//
// # Overview
//
// EvPay standardizes three concerns that otherwise differ per payment
// provider: opening hosted checkout sessions, verifying webhook signatures,
// and normalizing webhook payloads into a single event shape. Every inbound
// webhook is recorded, verified or not, in an append-only event log.
//
// # Architecture
//
// The payment flow follows this pattern:
//
//	┌─────────────────┐    ┌─────────────────┐    ┌─────────────────┐
//	│                 │    │                 │    │                 │
//	│  Charging Apps  │◄──►│     EvPay       │◄──►│    Payment      │
//	│                 │    │   (Gateway)     │    │   Providers     │
//	│                 │    │                 │    │                 │
//	└─────────────────┘    └─────────────────┘    └─────────────────┘
//
// # Supported Providers
//
// Currently supported payment providers include:
//   - Stripe: international card processing (USD, EUR, GBP, TRY)
//   - İyzico: Turkish payment gateway (TRY, USD, EUR)
//   - Papara: Turkish digital wallet, TRY only
//
// # Quick Start
//
// Basic usage example:
//
//	package main
//
//	import (
//	    "context"
//	    "github.com/evgolabs/evpay/provider"
//	    _ "github.com/evgolabs/evpay/provider/stripe" // Import to register provider
//	)
//
//	func main() {
//	    service := provider.NewPaymentService(provider.NewEventStore(), nil)
//
//	    err := service.AddProvider("stripe", map[string]string{
//	        "secretKey":      "sk_test_...",
//	        "publishableKey": "pk_test_...",
//	        "webhookSecret":  "whsec_...",
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    session, err := service.Checkout(context.Background(), []byte(`{
//	        "provider": "stripe",
//	        "amount": 100,
//	        "currency": "USD",
//	        "customerId": "cust_1"
//	    }`))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    // Redirect the customer to session.RedirectURL
//	    _ = session
//	}
//
// # HTTP API
//
// EvPay also provides a REST API for integration:
//
//	# Open a checkout session
//	POST /v1/checkout
//
//	# List configured providers
//	GET /v1/providers
//
//	# Receive a provider webhook
//	POST /v1/webhooks/{provider}
//
//	# Inspect and reset the webhook event log
//	GET    /v1/webhooks/events
//	DELETE /v1/webhooks/events
//
// # Webhook Verification
//
// Every webhook delivery is verified against the provider's signature header
// using HMAC-SHA256 over the raw request body. A failed check does not drop
// the delivery: the event is recorded with verified=false so operators can
// inspect spoofed or misconfigured traffic.
//
// # Configuration
//
// Provider credentials are read from environment variables with sandbox
// defaults, so the service boots without any configuration:
//
//	STRIPE_SECRET_KEY=sk_test_...
//	STRIPE_PUBLISHABLE_KEY=pk_test_...
//	STRIPE_WEBHOOK_SECRET=whsec_...
//	IYZICO_API_KEY=...
//	IYZICO_SECRET_KEY=...
//	IYZICO_WEBHOOK_SECRET=...
//	PAPARA_MERCHANT_ID=...
//	PAPARA_API_KEY=...
//	PAPARA_WEBHOOK_SECRET=...
//
// # Contributing
//
// To add a new payment provider:
//
//  1. Implement the provider.PaymentProvider interface
//  2. Add the provider package under provider/{provider}/
//  3. Register the provider in provider/{provider}/register.go
//  4. Add tests covering checkout, verification, and parsing
package evpay
