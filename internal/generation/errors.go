package generation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultRetryAfter is used when a 429 answer carries no usable Retry-After.
const DefaultRetryAfter = 60 * time.Second

var (
	// ErrTruncated reports a completion cut off at the output token limit.
	ErrTruncated = errors.New("completion truncated at the output token limit")

	// ErrCircuitOpen is wrapped by the RateLimitError a CircuitBreaker returns
	// while it refuses to contact its provider.
	ErrCircuitOpen = errors.New("circuit open")
)

// RateLimitError is returned when a provider refuses a prompt with HTTP 429.
// CircuitBreaker keeps the provider out of rotation for RetryAfter.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: generation rate limited, next attempt in %s: %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError wraps err for provider. A non-positive retryAfter
// becomes DefaultRetryAfter.
func NewRateLimitError(provider string, err error, retryAfter time.Duration) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return &RateLimitError{Provider: provider, RetryAfter: retryAfter, Err: err}
}

// AsRateLimit reports whether err carries a RateLimitError.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

// RetryAfter reads the Retry-After header of a 429 answer, given either as
// delta-seconds or as an HTTP date relative to now. It returns zero when the
// header is missing, malformed or already in the past.
func RetryAfter(h http.Header, now time.Time) time.Duration {
	val := strings.TrimSpace(h.Get("Retry-After"))
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	at, err := http.ParseTime(val)
	if err != nil || !at.After(now) {
		return 0
	}
	return at.Sub(now).Round(time.Second)
}

// Truncate shortens provider error bodies before they are wrapped into errors.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
