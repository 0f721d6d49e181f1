package auth

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter per client
type RateLimiter struct {
	mu      sync.Mutex
	rpm     int
	buckets map[string]*tokenBucket
	now     func() time.Time
}

type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing rpm requests per minute per
// client. rpm <= 0 disables limiting.
func NewRateLimiter(rpm int) *RateLimiter {
	return &RateLimiter{
		rpm:     rpm,
		buckets: make(map[string]*tokenBucket),
		now:     time.Now,
	}
}

func (r *RateLimiter) newBucket(now time.Time) *tokenBucket {
	// Allow burst of ~10 seconds worth, minimum 10 requests
	maxTokens := float64(r.rpm) / 6
	if maxTokens < 10 {
		maxTokens = 10
	}
	return &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: float64(r.rpm) / 60.0,
		lastRefill: now,
	}
}

// Allow checks if a request is allowed for the client
// Returns true if allowed, false if rate limited
func (r *RateLimiter) Allow(client string) bool {
	if r == nil || r.rpm <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.buckets[client]
	if !exists {
		bucket = r.newBucket(now)
		r.buckets[client] = bucket
	}

	// Refill tokens based on time elapsed
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens += elapsed * bucket.refillRate
	if bucket.tokens > bucket.maxTokens {
		bucket.tokens = bucket.maxTokens
	}
	bucket.lastRefill = now

	// Try to consume a token
	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}

	return false
}

// Prune drops buckets idle for longer than idle.
func (r *RateLimiter) Prune(idle time.Duration) int {
	if r == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for client, b := range r.buckets {
		if now.Sub(b.lastRefill) > idle {
			delete(r.buckets, client)
			removed++
		}
	}
	return removed
}

// Clients returns the number of tracked clients (for metrics)
func (r *RateLimiter) Clients() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}
