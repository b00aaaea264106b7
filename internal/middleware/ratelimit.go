package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"memu-demos/pkg/response"
)

// RateLimitConfig tunes the per-client token bucket. The demo apps sit in
// front of paid provider APIs, so the writes that trigger provider calls
// are throttled.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

const (
	defaultRequestsPerSecond = 2.0
	defaultBurst             = 5

	limiterCacheSize = 2048
	limiterCacheTTL  = 10 * time.Minute
)

// ipLimiter keeps one token bucket per client IP. Buckets for idle clients
// age out of the cache.
type ipLimiter struct {
	cfg     RateLimitConfig
	buckets *expirable.LRU[string, *rate.Limiter]
}

func newIPLimiter(cfg RateLimitConfig) *ipLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	return &ipLimiter{
		cfg:     cfg,
		buckets: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
	}
}

func (l *ipLimiter) allow(clientIP string) bool {
	limiter, ok := l.buckets.Get(clientIP)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
		l.buckets.Add(clientIP, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles a route per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s %s from %s",
				c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
