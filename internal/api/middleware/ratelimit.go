package middleware

import (
	"fmt"
	"net/http"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/service"
)

// RateLimitMiddleware provides rate limiting middleware
type RateLimitMiddleware struct {
	rateLimitService *service.RateLimitService
	dailyLimit       int
	monthlyLimit     int
}

// NewRateLimitMiddleware creates a new rate limit middleware with the
// platform-wide default limits
func NewRateLimitMiddleware(rateLimitService *service.RateLimitService, dailyLimit, monthlyLimit int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		rateLimitService: rateLimitService,
		dailyLimit:       dailyLimit,
		monthlyLimit:     monthlyLimit,
	}
}

// RateLimit checks and enforces rate limits
func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := GetUserID(r.Context())
		if userID == nil {
			// No user ID means unauthenticated - let auth middleware handle it
			next.ServeHTTP(w, r)
			return
		}

		result, err := m.rateLimitService.CheckAndIncrement(r.Context(), *userID, m.dailyLimit, m.monthlyLimit)
		if err != nil {
			// Redis errors do not block the request
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Daily-Limit", fmt.Sprintf("%d", result.DailyLimit))
		w.Header().Set("X-RateLimit-Daily-Used", fmt.Sprintf("%d", result.DailyUsed))
		w.Header().Set("X-RateLimit-Monthly-Limit", fmt.Sprintf("%d", result.MonthlyLimit))
		w.Header().Set("X-RateLimit-Monthly-Used", fmt.Sprintf("%d", result.MonthlyUsed))

		if !result.Allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", result.RetryAfterSecs))
			http.Error(w, `{"message": "Rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
