package generation

import (
	"fmt"

	"github.com/rs/zerolog"

	"docscan/internal/config"
	"docscan/internal/port"
)

// New builds the configured provider and wraps it with the request limiter
// (when requests_per_minute is set) and the rate-limit circuit.
func New(cfg *config.GenerationConfig, log zerolog.Logger) (port.TextGenerator, error) {
	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("generation.requests_per_minute must not be negative: %d", cfg.RequestsPerMinute)
	}
	if cfg.RequestsPerMinute > 0 {
		gen = NewRateLimited(gen, cfg.RequestsPerMinute)
	}
	return NewCircuitBreaker(gen, cfg.Provider, log), nil
}
