package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/logger"
)

// RateLimiter limita requests por IP (token bucket por cliente).
// Se usa en /auth para frenar fuerza bruta de passwords.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time

	lastSweep time.Time
}

const (
	maxVisitors = 1024
	sweepEvery  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = now

	// Limpieza perezosa de visitantes inactivos, a lo sumo una vez por sweepEvery.
	if len(rl.limiters) > maxVisitors && now.Sub(rl.lastSweep) >= sweepEvery {
		rl.lastSweep = now
		for k, other := range rl.limiters {
			if now.Sub(other.lastSeen) > rl.idleTTL {
				delete(rl.limiters, k)
			}
		}
	}

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.allow(key) {
			logger.FromContext(r.Context(), nil).Warn("rate limit exceeded", map[string]any{
				"client": key,
			})
			w.Header().Set("Retry-After", "1")
			httpjson.Error(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP usa RemoteAddr; TrustedRealIP sólo lo reescribe si el peer es un proxy de confianza.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
