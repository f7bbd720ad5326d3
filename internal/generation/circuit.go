package generation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"docscan/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// CircuitBreaker stops calling a provider that answered 429 until its
// Retry-After window has passed. While open, Generate fails immediately with
// a RateLimitError and the provider is not contacted.
// It implements port.TextGenerator.
type CircuitBreaker struct {
	next    port.TextGenerator
	name    string
	circuit *circuitState
	now     func() time.Time
	log     zerolog.Logger
}

// NewCircuitBreaker wraps next with rate-limit backoff.
func NewCircuitBreaker(next port.TextGenerator, name string, log zerolog.Logger) *CircuitBreaker {
	return NewCircuitBreakerWithClock(next, name, log, time.Now)
}

// NewCircuitBreakerWithClock is NewCircuitBreaker with an injectable clock (for testing).
func NewCircuitBreakerWithClock(next port.TextGenerator, name string, log zerolog.Logger, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		next:    next,
		name:    name,
		circuit: &circuitState{},
		now:     now,
		log:     log,
	}
}

func (b *CircuitBreaker) Generate(ctx context.Context, req port.GenerationRequest) (string, error) {
	now := b.now()
	if resetAt, open := b.circuit.isOpenWithReset(now); open {
		b.log.Debug().Str("provider", b.name).Time("reset_at", resetAt).Msg("circuit open, skipping provider")
		retryAfter := resetAt.Sub(now)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return "", NewRateLimitError(b.name, ErrCircuitOpen, retryAfter)
	}

	out, err := b.next.Generate(ctx, req)
	if err == nil {
		return out, nil
	}

	if rlErr, ok := AsRateLimit(err); ok {
		resetAt := now.Add(rlErr.RetryAfter)
		b.circuit.open(resetAt)
		b.log.Warn().Str("provider", b.name).Time("reset_at", resetAt).Msg("provider rate limited, opening circuit")
	}
	return "", err
}
