package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client's limiter is kept.
const limiterTTL = time.Hour

// RateLimitMiddleware limits each client IP to perSecond requests with the
// given burst. Every dashboard cycle may write to the store, so the cycle
// endpoints sit behind it.
func RateLimitMiddleware(perSecond float64, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(perSecond), burst), limiterTTL
		},
		func(c *gin.Context) {
			log.Printf("RateLimitMiddleware(): too many requests from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		},
	)
}
