package ratelimit

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// tierForPath maps a request path onto a rate limit tier. Booking
// endpoints get the tightest budget, auth next, read-only public
// endpoints the loosest.
func tierForPath(path string) RateLimitType {
	switch {
	case strings.Contains(path, "/bookings"):
		return RateLimitTypeBooking
	case strings.Contains(path, "/auth"):
		return RateLimitTypeAuth
	case strings.Contains(path, "/admin"):
		return RateLimitTypeAdmin
	case strings.Contains(path, "/trips") || strings.Contains(path, "/content"):
		return RateLimitTypePublic
	default:
		return RateLimitTypeDefault
	}
}

// Middleware enforces per-IP rate limits and sets the standard
// X-RateLimit-* response headers.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.IsAllowed(c.Request.Context(), c.ClientIP(), tierForPath(c.Request.URL.Path))
		if err != nil {
			// Redis trouble should not take the API down; let the
			// request through and let the next window recover.
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime, 10))

		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":      "error",
				"status_code": http.StatusTooManyRequests,
				"message":     "Rate limit exceeded, try again later",
			})
			return
		}

		c.Next()
	}
}
