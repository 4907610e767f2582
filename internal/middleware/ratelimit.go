package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client's limiter sticks around before its
// entry is dropped from the map.
const visitorTTL = 10 * time.Minute

// NewRateLimiter returns a middleware that enforces a per-client request rate.
// Each client IP gets its own token bucket allowing a sustained rps with a
// burst of up to burst requests. Clients over the limit receive 429 Too Many
// Requests.
//
// Wire it after chimiddleware.RealIP so RemoteAddr reflects the true client.
func NewRateLimiter(rps float64, burst int) func(http.Handler) http.Handler {
	rl := &rateLimiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiterFor(clientIP(r)).Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// limiterFor returns the token bucket for ip, creating one on first sight.
// New entries schedule their own eviction so the map does not grow without
// bound under churning client IPs.
func (rl *rateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if lim, ok := rl.visitors[ip]; ok {
		return lim
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors[ip] = lim

	go func() {
		time.Sleep(visitorTTL)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return lim
}

// clientIP strips the port from RemoteAddr so all connections from one host
// share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
