package leads

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/pkg/apperror"
)

// RateLimiter keeps one token bucket per client IP for the lead endpoints.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute with the given burst.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// NewRateLimiterFromConfig is the fx constructor.
func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Leads.RequestsPerMinute, cfg.Leads.Burst)
}

// Allow reports whether a request from key may proceed.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Prune drops limiters idle for longer than maxIdle. Returns how many were removed.
func (l *RateLimiter) Prune(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-maxIdle)
	removed := 0
	for key, v := range l.limiters {
		if v.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware rejects over-limit requests. When reject is nil a JSON 429 is written.
func (l *RateLimiter) Middleware(form Form, reject http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.Allow(ClientIP(r)) {
				next.ServeHTTP(w, r)
				return
			}
			LeadsSubmitted.WithLabelValues(string(form), OutcomeThrottled).Inc()
			w.Header().Set("Retry-After", "60")
			if reject != nil {
				reject.ServeHTTP(w, r)
				return
			}
			apperror.WriteJSON(w, r, nil, apperror.ErrTooManyRequests)
		})
	}
}

// ClientIP returns the host part of RemoteAddr. Forwarded headers only count
// when the router installed chi's RealIP (TRUST_PROXY_HEADERS).
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
