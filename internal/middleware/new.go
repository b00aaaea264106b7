package middleware

import (
	pkgLog "memu-demos/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       pkgLog.Logger
	limiter *ipLimiter
}

func New(l pkgLog.Logger, cfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newIPLimiter(cfg),
	}
}
