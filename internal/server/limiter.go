package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client's bucket is kept after its last request
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client address. Buckets idle
// for longer than idleTTL are evicted, at most once per idleTTL.
type IPRateLimiter struct {
	ips       map[string]*client
	mu        sync.Mutex
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

// NewIPRateLimiter allows r requests per second with bursts of b per client
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*client),
		r:         r,
		b:         b,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= idleTTL {
		i.sweep(now)
	}

	c, exists := i.ips[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops idle clients. The caller holds mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, c := range i.ips {
		if now.Sub(c.lastSeen) >= idleTTL {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

// Len returns the number of tracked clients
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// LimitMiddleware rejects requests over the client's rate with 429
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !i.getLimiter(ip).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}
