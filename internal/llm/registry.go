package llm

import (
	"fmt"

	"github.com/Anandakumar9/Ask-Anand-sub000/config"
)

// ProviderFactory creates a provider instance from application config.
type ProviderFactory func(cfg *config.Config) (Provider, error)

// global registry of available providers
var providers = make(map[string]ProviderFactory)

// RegisterProvider registers a provider factory with the given name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider creates a provider instance based on the given name.
func NewProvider(name string, cfg *config.Config) (Provider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory(cfg)
}
