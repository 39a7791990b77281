// Package handler provides HTTP request handlers for the EvPay payment
// gateway.
//
// The handlers bridge the HTTP layer with the provider package:
//
//   - CheckoutHandler: opens checkout sessions (POST /v1/checkout)
//   - WebhookHandler: receives provider webhooks and manages the event log
//   - ProviderHandler: lists the configured provider set
//
// # Response Format
//
// All handlers write the shared response envelope:
//
//	{
//	  "code": 201,
//	  "success": true,
//	  "message": "Checkout session created",
//	  "data": { "session": { ... } }
//	}
//
// Errors carry the failure message and, for provider lookups, the offending
// provider key:
//
//	{
//	  "code": 400,
//	  "success": false,
//	  "message": "Unknown payment provider",
//	  "provider": "paypal",
//	  "error": "unsupported payment provider: paypal"
//	}
//
// # HTTP Status Codes
//
//   - 200 OK: webhook processed (verified or not), events listed or cleared
//   - 201 Created: checkout session opened
//   - 400 Bad Request: validation failure or unknown provider
//   - 422 Unprocessable Entity: unparseable webhook payload
//   - 502 Bad Gateway: checkout rejected at the payment provider
//   - 500 Internal Server Error: misconfiguration or unexpected failure
//
// # Webhook Semantics
//
// A webhook delivery that fails signature verification is not an error: it
// is recorded and returned with verified=false, and the endpoint responds
// 200. Only an unknown provider or an unparseable body produces an error
// status.
package handler
