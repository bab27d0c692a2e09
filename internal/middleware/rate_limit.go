package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"chatbot-router/pkg/response"
)

// MaxTrackedClients bounds the per-IP limiter table. Once full, the least
// recently seen client is evicted and starts over with a fresh limiter.
const MaxTrackedClients = 4096

// RateLimit enforces a per-client-IP request budget. Disabled when the
// configured per-minute limit is zero.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.cfg.PerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var mu sync.Mutex
	limiters, _ := lru.New[string, *rate.Limiter](MaxTrackedClients)

	perRequest := time.Minute / time.Duration(m.cfg.PerMin)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(perRequest), m.cfg.PerMin)
			limiters.Add(ip, limiter)
		}
		mu.Unlock()

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}

		c.Next()
	}
}
