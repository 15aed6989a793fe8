package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const staleAfter = 10 * time.Minute

// attempt holds the rate limiter and the last time the name was seen.
type attempt struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	mu       sync.Mutex
	attempts map[string]*attempt
	limit    rate.Limit
	burst    int
}

func newLimiter(r rate.Limit, b int) *limiter {
	return &limiter{
		attempts: make(map[string]*attempt),
		limit:    r,
		burst:    b,
	}
}

// allow reports whether a login attempt for the given name fits inside
// its token bucket. Stale entries are swept opportunistically so the
// map does not grow with every mistyped name.
func (l *limiter) allow(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep()

	a, exists := l.attempts[name]
	if !exists {
		a = &attempt{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.attempts[name] = a
	}
	a.lastSeen = time.Now()

	return a.limiter.Allow()
}

func (l *limiter) sweep() {
	for name, a := range l.attempts {
		if time.Since(a.lastSeen) > staleAfter {
			delete(l.attempts, name)
		}
	}
}
