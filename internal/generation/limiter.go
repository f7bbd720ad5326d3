package generation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"docscan/internal/port"
)

// RateLimited spaces out calls to a provider so a configured request budget
// per minute is not exceeded. It implements port.TextGenerator.
type RateLimited struct {
	next    port.TextGenerator
	limiter *rate.Limiter
}

// NewRateLimited allows requestsPerMinute calls per minute with a burst of one.
func NewRateLimited(next port.TextGenerator, requestsPerMinute int) *RateLimited {
	every := time.Minute / time.Duration(requestsPerMinute)
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(every), 1),
	}
}

func (r *RateLimited) Generate(ctx context.Context, req port.GenerationRequest) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for generation rate limiter: %w", err)
	}
	return r.next.Generate(ctx, req)
}
