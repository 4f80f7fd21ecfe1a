package middleware

import (
	pkgLog "daily-task-scheduler/pkg/log"
)

// Middleware bundles the HTTP middlewares shared by all delivery routes.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
