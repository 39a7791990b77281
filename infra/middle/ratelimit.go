package middle

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/evgolabs/evpay/infra/config"
	"github.com/evgolabs/evpay/infra/response"
)

// RateLimiter is a fixed-window per-IP rate limiter
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a rate limiter with the configured per-minute rate
// (default: 120 requests per minute)
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     config.GetIntEnv("RATE_LIMIT_PER_MINUTE", 120),
		window:   time.Minute,
	}

	go rl.cleanup()

	return rl
}

// Allow checks if a request from clientIP is within the rate limit
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[clientIP]

	if !exists || now.Sub(v.lastReset) > rl.window {
		rl.visitors[clientIP] = &visitor{count: 1, lastReset: now}
		return true
	}

	if v.count >= rl.rate {
		return false
	}

	v.count++
	return true
}

// cleanup periodically removes stale visitors
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-2 * rl.window)
		for ip, v := range rl.visitors {
			if v.lastReset.Before(cutoff) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware rejects requests beyond the per-IP rate limit
func RateLimitMiddleware(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := GetClientIP(r)

			if !rl.Allow(clientIP) {
				w.Header().Set("Retry-After", strconv.Itoa(int(time.Minute.Seconds())))
				response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
