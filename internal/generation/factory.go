// Package generation builds text generators for the configured provider and
// wraps them with rate limiting and a rate-limit circuit.
package generation

import (
	"fmt"
	"sort"

	"docscan/internal/config"
	"docscan/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from the generation config.
type ProviderFactory func(cfg *config.GenerationConfig) (port.TextGenerator, error)

// registry of provider factories, populated explicitly via RegisterProvider
// at process start.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generation provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Providers returns the registered provider names in sorted order.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGenerator creates a TextGenerator from the generation config using the registered factory.
func NewGenerator(cfg *config.GenerationConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
