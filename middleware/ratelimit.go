package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimiter struct {
	clients map[string]*clientWindow
	mu      sync.Mutex
	limit   int
	window  time.Duration
}

type clientWindow struct {
	count     int
	resetTime time.Time
}

var limiter = &rateLimiter{
	clients: make(map[string]*clientWindow),
	limit:   120,
	window:  time.Minute,
}

func init() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.cleanup()
		}
	}()
}

// RateLimiter caps requests per client IP per minute. Enough headroom for the
// two demo pages polling the API, tight enough to survive a runaway script.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		limiter.mu.Lock()
		client, exists := limiter.clients[ip]
		if !exists || now.After(client.resetTime) {
			limiter.clients[ip] = &clientWindow{count: 1, resetTime: now.Add(limiter.window)}
			limiter.mu.Unlock()
			c.Next()
			return
		}

		if client.count >= limiter.limit {
			limiter.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		client.count++
		limiter.mu.Unlock()
		c.Next()
	}
}

func (r *rateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for ip, client := range r.clients {
		if now.After(client.resetTime) {
			delete(r.clients, ip)
		}
	}
}
