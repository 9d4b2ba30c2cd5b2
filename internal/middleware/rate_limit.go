package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

// RateLimit applies one process-wide token bucket. perSec <= 0 disables it.
func RateLimit(perSec float64, burst int) gin.HandlerFunc {
	if perSec <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(perSec), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			httperr.TooManyRequests(c, "Too many requests")
			return
		}
		c.Next()
	}
}
