// internal/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter paces outbound requests.
type RateLimiter interface {
	// Wait blocks until a request for the given URL can proceed.
	// If the context is cancelled before the limiter allows it, an error is returned.
	Wait(ctx context.Context, urlStr string) error
}

// HostLimiter enforces a fixed minimum interval between requests to the same host.
// A token bucket of size one means the first request is never delayed and every
// following one waits out the remainder of the interval.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	every    rate.Limit
}

// NewHostLimiter creates a limiter that spaces requests per host by delay.
// A non-positive delay disables pacing.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    limit,
	}
}

// Wait blocks until the request for the given URL can proceed
func (hl *HostLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	host := extractHost(urlStr)
	if host == "" {
		// Invalid URL, let it proceed (the request itself will fail)
		return nil
	}

	return hl.getLimiter(host).Wait(ctx)
}

// Allow reports whether a request may proceed right now, consuming the slot if so
func (hl *HostLimiter) Allow(urlStr string) bool {
	host := extractHost(urlStr)
	if host == "" {
		return true
	}

	return hl.getLimiter(host).Allow()
}

// getLimiter returns or creates the limiter for the given host
func (hl *HostLimiter) getLimiter(host string) *rate.Limiter {
	hl.mu.RLock()
	limiter, exists := hl.limiters[host]
	hl.mu.RUnlock()

	if exists {
		return limiter
	}

	hl.mu.Lock()
	defer hl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := hl.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(hl.every, 1)
	hl.limiters[host] = limiter

	return limiter
}

func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
