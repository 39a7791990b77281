package config

import (
	"fmt"
	"sync"
)

// ProviderConfig manages payment provider configurations loaded from the
// environment. The configured set is read-only after LoadFromEnv.
type ProviderConfig struct {
	configs map[string]map[string]string
	order   []string
	mu      sync.RWMutex
}

// NewProviderConfig creates an empty provider configuration
func NewProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		configs: make(map[string]map[string]string),
	}
}

// LoadFromEnv loads credentials for every supported provider from the
// environment. Sandbox defaults keep the service bootable without any env
// vars set; production deployments override them.
func (c *ProviderConfig) LoadFromEnv() {
	c.set("stripe", map[string]string{
		"secretKey":      GetEnv("STRIPE_SECRET_KEY", "sk_test_1234567890"),
		"publishableKey": GetEnv("STRIPE_PUBLISHABLE_KEY", "pk_test_1234567890"),
		"webhookSecret":  GetEnv("STRIPE_WEBHOOK_SECRET", "whsec_1234567890"),
	})

	c.set("iyzico", map[string]string{
		"apiKey":        GetEnv("IYZICO_API_KEY", "sandbox-iyzico-api-key"),
		"secretKey":     GetEnv("IYZICO_SECRET_KEY", "sandbox-iyzico-secret-key"),
		"webhookSecret": GetEnv("IYZICO_WEBHOOK_SECRET", "sandbox-iyzico-webhook-secret"),
	})

	c.set("papara", map[string]string{
		"merchantId":    GetEnv("PAPARA_MERCHANT_ID", "sandbox-merchant-id"),
		"apiKey":        GetEnv("PAPARA_API_KEY", "sandbox-papara-api-key"),
		"webhookSecret": GetEnv("PAPARA_WEBHOOK_SECRET", "sandbox-papara-webhook-secret"),
	})
}

func (c *ProviderConfig) set(providerName string, conf map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.configs[providerName]; !exists {
		c.order = append(c.order, providerName)
	}
	c.configs[providerName] = conf
}

// GetConfig returns the configuration for a provider
func (c *ProviderConfig) GetConfig(providerName string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	conf, exists := c.configs[providerName]
	if !exists {
		return nil, fmt.Errorf("no configuration found for provider: %s", providerName)
	}

	// Return a copy to prevent external modification
	confCopy := make(map[string]string, len(conf))
	for k, v := range conf {
		confCopy[k] = v
	}
	return confCopy, nil
}

// GetAvailableProviders returns all configured provider names in load order
func (c *ProviderConfig) GetAvailableProviders() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	providers := make([]string, len(c.order))
	copy(providers, c.order)
	return providers
}
