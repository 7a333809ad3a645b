// Package cache holds the per-client request counters behind the rate
// limiting middleware: token buckets in process memory, or fixed windows
// in Redis when several instances share one budget.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may make another
// request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter keeps one token bucket per key. Buckets idle for longer
// than the refill window are swept on the next call after a minute.
type MemoryLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*bucket
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewMemoryLimiter allows perMinute requests per key, refilled evenly
// across the minute.
func NewMemoryLimiter(perMinute int) *MemoryLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &MemoryLimiter{
		limiters: make(map[string]*bucket),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		idle:     time.Minute,
		now:      time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > time.Minute {
		m.sweep(now)
		m.lastSweep = now
	}

	b, ok := m.limiters[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1), nil
}

// Len is the number of tracked keys.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.limiters)
}

func (m *MemoryLimiter) sweep(now time.Time) {
	for key, b := range m.limiters {
		if now.Sub(b.seen) > m.idle {
			delete(m.limiters, key)
		}
	}
}
