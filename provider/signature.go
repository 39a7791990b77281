package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputeWebhookSignature returns the hex-encoded HMAC-SHA256 digest of body
// under secret. All providers sign webhook deliveries with this scheme.
func ComputeWebhookSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature reports whether provided matches the digest of body
// under secret. A length mismatch short-circuits to false; equal-length
// buffers are compared in constant time.
func VerifyWebhookSignature(secret string, body []byte, provided string) bool {
	if secret == "" || provided == "" {
		return false
	}

	expected := ComputeWebhookSignature(secret, body)
	if len(expected) != len(provided) {
		return false
	}

	return hmac.Equal([]byte(provided), []byte(expected))
}

// HeaderValue performs a case-insensitive lookup of name in headers and
// returns the first match.
func HeaderValue(headers map[string]string, name string) string {
	if value, ok := headers[name]; ok {
		return value
	}

	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}
