package server

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// ipRateLimiter is a token bucket per client IP. Buckets refill at a fixed
// per-minute rate up to the burst size; idle buckets are pruned so the map
// does not grow with every visitor ever seen.
type ipRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perMinute float64
	burst     float64
	lastPrune time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 10
	}
	return &ipRateLimiter{
		buckets:   make(map[string]*bucket),
		perMinute: float64(perMinute),
		burst:     float64(burst),
		lastPrune: time.Now(),
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > 10*time.Minute {
		for key, b := range l.buckets {
			if now.Sub(b.last) > 10*time.Minute {
				delete(l.buckets, key)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{tokens: l.burst, last: now}
		l.buckets[ip] = b
	}

	elapsed := now.Sub(b.last).Minutes()
	b.tokens += elapsed * l.perMinute
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
