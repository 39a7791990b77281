package provider

import "fmt"

// ProviderNotFoundError is returned when a provider key does not resolve to
// any configured provider. It is always a client error.
type ProviderNotFoundError struct {
	ProviderKey string
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("unsupported payment provider: %s", e.ProviderKey)
}

// ProviderConfigurationError is returned when a provider is constructed
// without its required credentials. It is fatal at startup: a misconfigured
// provider is never registered.
type ProviderConfigurationError struct {
	Provider string
	Message  string
}

func (e *ProviderConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// ProviderCheckoutError is returned when session creation or event parsing
// fails at a specific provider. The wrapped cause is kept for diagnostics;
// propagation decisions key off the error kind, never the cause type.
type ProviderCheckoutError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderCheckoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderCheckoutError) Unwrap() error {
	return e.Cause
}

// WebhookProcessingError wraps any unexpected failure during webhook
// handling. Signature-verification failure is NOT an error and never
// produces one of these.
type WebhookProcessingError struct {
	Provider string
	Cause    error
}

func (e *WebhookProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unable to process webhook for provider %s: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("unable to process webhook for provider %s", e.Provider)
}

func (e *WebhookProcessingError) Unwrap() error {
	return e.Cause
}

// ValidationError reports malformed caller input. Field names the first
// invalid field in declaration order.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
