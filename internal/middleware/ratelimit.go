package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Sweep timing for idle client limiters.
const (
	sweepInterval = 5 * time.Minute
	clientIdleTTL = 10 * time.Minute
)

// RateLimitConfig holds configuration for the rate limiter middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit (tokens added per second).
	RequestsPerSecond float64
	// Burst is the maximum number of requests allowed in a burst.
	Burst int
	// ExemptPrefixes are path prefixes served without consuming tokens
	// (health checks, static assets).
	ExemptPrefixes []string
}

// clientLimiter tracks a per-client rate limiter and when it was last seen.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func (cl *clientLimiter) touch(now time.Time) { cl.lastSeen.Store(now.UnixNano()) }

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// limiterSet is the per-client limiter table.
type limiterSet struct {
	cfg     RateLimitConfig
	clients sync.Map // map[string]*clientLimiter
}

func (s *limiterSet) get(ip string, now time.Time) *rate.Limiter {
	if v, ok := s.clients.Load(ip); ok {
		cl := v.(*clientLimiter)
		cl.touch(now)
		return cl.limiter
	}
	cl := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(s.cfg.RequestsPerSecond), s.cfg.Burst)}
	cl.touch(now)
	actual, _ := s.clients.LoadOrStore(ip, cl)
	return actual.(*clientLimiter).limiter
}

// sweep drops limiters idle for longer than ttl and returns how many remain.
func (s *limiterSet) sweep(now time.Time, ttl time.Duration) int {
	remaining := 0
	s.clients.Range(func(key, value any) bool {
		if value.(*clientLimiter).idleSince(now) > ttl {
			s.clients.Delete(key)
		} else {
			remaining++
		}
		return true
	})
	return remaining
}

func (s *limiterSet) exempt(path string) bool {
	for _, p := range s.cfg.ExemptPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RateLimiter returns an HTTP middleware that enforces a per-client token-bucket
// rate limit. When the limit is exceeded, it responds with 429 Too Many Requests
// and sets standard rate-limit headers. Idle clients are swept in the
// background until ctx is done.
func RateLimiter(ctx context.Context, cfg RateLimitConfig) func(http.Handler) http.Handler {
	set := &limiterSet{cfg: cfg}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				set.sweep(now, clientIdleTTL)
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if set.exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			now := time.Now()
			limiter := set.get(clientIP(r), now)

			reservation := limiter.ReserveN(now, 1)
			if !reservation.OK() {
				// Limiter cannot grant the request even with infinite wait.
				writeTooManyRequests(w, 0)
				return
			}

			delay := reservation.DelayFrom(now)
			if delay > 0 {
				// Request would exceed the rate; give the token back and reject.
				reservation.CancelAt(now)
				retryAfter := int(delay.Seconds()) + 1
				writeTooManyRequests(w, retryAfter)
				return
			}

			// Set rate-limit headers on all responses.
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(now.Add(time.Second).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client IP address from the request, stripping the port.
// Only uses RemoteAddr; X-Forwarded-For is untrusted and ignored to prevent
// rate-limit bypass via header spoofing.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	if retryAfterSecs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSecs))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    429,
		"message": "rate limit exceeded",
	})
}
