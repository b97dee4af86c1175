package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/yigit/gradebook/internal/app/models/dto"
)

// RateLimiter counts requests per client IP in fixed windows
type RateLimiter struct {
	counters *cache.Cache
	limit    int
	window   time.Duration
}

// NewRateLimiter allows limit requests per client within each window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: cache.New(window, 2*window),
		limit:    limit,
		window:   window,
	}
}

// Allow records a request for key and reports whether it is within the limit
func (l *RateLimiter) Allow(key string) bool {
	if err := l.counters.Add(key, 1, l.window); err == nil {
		return true
	}
	count, err := l.counters.IncrementInt(key, 1)
	if err != nil {
		// window expired between Add and IncrementInt
		l.counters.Set(key, 1, l.window)
		return true
	}
	return count <= l.limit
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests").WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}
		c.Next()
	}
}
