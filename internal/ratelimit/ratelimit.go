// Package ratelimit provides a keyed token-bucket rate limiter. The API
// uses it to throttle contribution submissions per client IP; the dataset
// is public and read endpoints are unthrottled.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// KeyedLimiter manages one token bucket per key.
type KeyedLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// New creates a keyed limiter allowing rps requests per second with the
// given burst per key.
func New(rps float64, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request for the key should proceed. Never blocks.
func (kl *KeyedLimiter) Allow(key string) bool {
	return kl.getLimiter(key).Allow()
}

// getLimiter returns the limiter for a key, creating it on first use.
func (kl *KeyedLimiter) getLimiter(key string) *rate.Limiter {
	kl.mu.RLock()
	limiter, exists := kl.limiters[key]
	kl.mu.RUnlock()
	if exists {
		return limiter
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()
	if limiter, exists = kl.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(kl.limit, kl.burst)
	kl.limiters[key] = limiter
	return limiter
}
