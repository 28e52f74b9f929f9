package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxClients bounds the limiter map; idle clients are swept beyond it.
const maxClients = 4096

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter manages a token bucket per client key (the remote IP).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows perMinute submissions per client with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 6
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the client may submit now.
func (m *RateLimiter) Allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cl, ok := m.limiters[key]
	if !ok {
		if len(m.limiters) >= maxClients {
			m.sweep(now)
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// sweep drops limiters that have been idle long enough to be full again.
func (m *RateLimiter) sweep(now time.Time) {
	idle := time.Duration(float64(m.burst)/float64(m.limit)) * time.Second
	for key, cl := range m.limiters {
		if now.Sub(cl.lastSeen) > idle {
			delete(m.limiters, key)
		}
	}
}

// Len returns the number of tracked clients.
func (m *RateLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.limiters)
}
