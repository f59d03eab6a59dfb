package inference

import (
	"fmt"
	"sort"

	"labelaudit/internal/config"
	"labelaudit/internal/port"
)

// ProviderFactory is a function that creates an InferenceClient from the inference config.
type ProviderFactory func(cfg *config.InferenceConfig) (port.InferenceClient, error)

// registry of provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClient creates an InferenceClient from the config using the registered factory.
func NewClient(cfg *config.InferenceConfig) (port.InferenceClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown inference provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Providers lists the registered provider names in sorted order.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
