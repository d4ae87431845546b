// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/cakebook/backend/internal/domain/error"
	"github.com/cakebook/backend/internal/integration/entrypoint/dto"
)

const (
	loginMaxAttempts = 5
	loginWindow      = time.Minute
)

// RateLimiter throttles credential endpoints per client IP. It protects
// the login route from brute force, nothing more; the per-user analytics
// cooldown is a separate concern handled inside the use cases.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
}

// attemptWindow counts attempts until expiry.
type attemptWindow struct {
	attempts int
	expiry   time.Time
}

// NewRateLimiter creates a limiter with the default login policy.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(loginMaxAttempts, loginWindow)
}

// NewRateLimiterWithConfig creates a limiter with a custom policy.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a Gin handler enforcing the limit. Disabled in the
// test environment so scenario suites can log in repeatedly.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.prune(now)

	w, ok := rl.windows[key]
	if !ok || now.After(w.expiry) {
		rl.windows[key] = &attemptWindow{attempts: 1, expiry: now.Add(rl.window)}
		return true
	}
	if w.attempts >= rl.maxAttempts {
		return false
	}
	w.attempts++
	return true
}

// prune drops expired windows so the map does not grow unbounded.
// Caller holds the mutex.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.expiry) {
			delete(rl.windows, key)
		}
	}
}

// Reset clears all tracked windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*attemptWindow)
}
