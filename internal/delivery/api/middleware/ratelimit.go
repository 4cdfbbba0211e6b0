package middleware

import (
	"sync"
	"time"

	"vora/config"
	deliverycontext "vora/internal/delivery/context"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type trackedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter holds one token bucket per key.
// Buckets idle for longer than the eviction window are dropped on a later call.
type keyedLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*trackedLimiter
	limit     rate.Limit
	burst     int
	eviction  time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newKeyedLimiter(perMinute float64, burst int, eviction time.Duration, now func() time.Time) *keyedLimiter {
	return &keyedLimiter{
		limiters:  make(map[string]*trackedLimiter),
		limit:     rate.Limit(perMinute / 60),
		burst:     burst,
		eviction:  eviction,
		lastSweep: now(),
		now:       now,
	}
}

func (l *keyedLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.eviction {
		for k, tracked := range l.limiters {
			if now.Sub(tracked.lastSeen) >= l.eviction {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	tracked, ok := l.limiters[key]
	if !ok {
		tracked = &trackedLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = tracked
	}
	tracked.lastSeen = now

	return tracked.limiter.AllowN(now, 1)
}

func (l *keyedLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

// RateLimitMiddleware throttles copywriter calls per visitor session.
type RateLimitMiddleware struct {
	limiter *keyedLimiter
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: newKeyedLimiter(cfg.Assistant.RequestsPerMinute, cfg.Assistant.Burst, cfg.Assistant.IdleEviction, time.Now),
	}
}

// Limit rejects the request with 429 once the session has spent its burst.
// Must run after SessionMiddleware.Resolve.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if sessionID, ok := deliverycontext.GetSessionID(c); ok {
			key = sessionID.String()
		}

		if !m.limiter.allow(key) {
			return errors.Wrap(domainerrors.ErrTooManyRequests, "assistant rate limit exceeded")
		}

		return next(c)
	}
}
