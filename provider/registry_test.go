package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderRegistry_Register(t *testing.T) {
	registry := NewProviderRegistry()

	mockFactory := func() PaymentProvider { return nil }

	registry.Register("test-provider", mockFactory)

	factory, err := registry.Get("test-provider")
	assert.NoError(t, err)
	assert.NotNil(t, factory)
}

func TestProviderRegistry_GetProviderNames(t *testing.T) {
	registry := NewProviderRegistry()

	names := registry.GetProviderNames()
	assert.Empty(t, names)

	mockFactory := func() PaymentProvider { return nil }
	registry.Register("provider1", mockFactory)
	registry.Register("provider2", mockFactory)

	names = registry.GetProviderNames()
	assert.Len(t, names, 2)
	assert.Contains(t, names, "provider1")
	assert.Contains(t, names, "provider2")
}

func TestProviderRegistry_Get_NotFound(t *testing.T) {
	registry := NewProviderRegistry()

	factory, err := registry.Get("non-existent")
	assert.Error(t, err)
	assert.Nil(t, factory)
	assert.Contains(t, err.Error(), "is not registered")
}

func TestDefaultRegistry(t *testing.T) {
	mockFactory := func() PaymentProvider { return nil }

	Register("default-test", mockFactory)

	factory, err := Get("default-test")
	assert.NoError(t, err)
	assert.NotNil(t, factory)

	names := DefaultRegistry.GetProviderNames()
	assert.Contains(t, names, "default-test")
}
