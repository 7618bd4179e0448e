package middleware

import (
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

// TotalKey is the counter incremented for every request regardless of method.
const TotalKey = "total"

// RequestCounter counts handled requests, in total and per HTTP method.
type RequestCounter struct {
	mu       sync.RWMutex
	counters map[string]*int64
}

// NewRequestCounter creates an empty RequestCounter.
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{
		counters: make(map[string]*int64),
	}
}

// Handler is a Fiber middleware that records the request before passing it on.
func (rc *RequestCounter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc.Increment(TotalKey)
		rc.Increment(c.Method())
		return c.Next()
	}
}

// Increment adds one to the counter named key.
func (rc *RequestCounter) Increment(key string) {
	rc.mu.RLock()
	counter, ok := rc.counters[key]
	rc.mu.RUnlock()
	if !ok {
		rc.mu.Lock()
		if counter, ok = rc.counters[key]; !ok {
			counter = new(int64)
			rc.counters[key] = counter
		}
		rc.mu.Unlock()
	}
	atomic.AddInt64(counter, 1)
}

// Count returns the current value of the counter named key.
func (rc *RequestCounter) Count(key string) int64 {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if counter, ok := rc.counters[key]; ok {
		return atomic.LoadInt64(counter)
	}
	return 0
}

// Snapshot returns a copy of all counters.
func (rc *RequestCounter) Snapshot() map[string]int64 {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make(map[string]int64, len(rc.counters))
	for key, counter := range rc.counters {
		out[key] = atomic.LoadInt64(counter)
	}
	return out
}
