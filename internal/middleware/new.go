package middleware

import (
	"chatbot-router/config"
	"chatbot-router/pkg/log"
)

// Middleware holds cross-cutting gin middleware for the service.
type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
