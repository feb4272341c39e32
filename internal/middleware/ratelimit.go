package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter applies a per-client-IP sliding window limit.
type RateLimiter struct {
	requests map[string][]int64 // IP -> request timestamps
	mu       sync.Mutex
}

// NewRateLimiter creates a rate limiter with an empty window table.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]int64),
	}
}

// Limit rejects clients exceeding maxRequests within the window.
func (l *RateLimiter) Limit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now().Unix()
		windowStart := now - int64(window.Seconds())

		l.mu.Lock()
		if timestamps, exists := l.requests[clientIP]; exists {
			var valid []int64
			for _, ts := range timestamps {
				if ts >= windowStart {
					valid = append(valid, ts)
				}
			}
			l.requests[clientIP] = valid
		}

		if len(l.requests[clientIP]) >= maxRequests {
			l.mu.Unlock()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded"})
			return
		}

		l.requests[clientIP] = append(l.requests[clientIP], now)
		l.mu.Unlock()

		c.Next()
	}
}
