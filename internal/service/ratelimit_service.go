package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimitService handles per-user rate limiting using Redis
type RateLimitService struct {
	client *redis.Client
}

// NewRateLimitService creates a new rate limit service on a shared Redis
// connection
func NewRateLimitService(client *redis.Client) *RateLimitService {
	return &RateLimitService{client: client}
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed        bool
	DailyUsed      int
	DailyLimit     int
	MonthlyUsed    int
	MonthlyLimit   int
	RetryAfterSecs int
}

// CheckAndIncrement checks if the request is within rate limits and
// increments counters
func (s *RateLimitService) CheckAndIncrement(ctx context.Context, userID uuid.UUID, dailyLimit, monthlyLimit int) (*RateLimitResult, error) {
	now := time.Now()
	dailyKey := fmt.Sprintf("ratelimit:daily:%s:%s", userID.String(), now.Format("2006-01-02"))
	monthlyKey := fmt.Sprintf("ratelimit:monthly:%s:%s", userID.String(), now.Format("2006-01"))

	// Get current counts
	dailyCount, err := s.client.Get(ctx, dailyKey).Int()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	monthlyCount, err := s.client.Get(ctx, monthlyKey).Int()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	result := &RateLimitResult{
		DailyUsed:    dailyCount,
		DailyLimit:   dailyLimit,
		MonthlyUsed:  monthlyCount,
		MonthlyLimit: monthlyLimit,
	}

	if dailyCount >= dailyLimit {
		tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		result.RetryAfterSecs = int(tomorrow.Sub(now).Seconds())
		result.Allowed = false
		return result, nil
	}

	if monthlyCount >= monthlyLimit {
		nextMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		result.RetryAfterSecs = int(nextMonth.Sub(now).Seconds())
		result.Allowed = false
		return result, nil
	}

	// Increment counters with expiry at the period boundary
	pipe := s.client.Pipeline()

	pipe.Incr(ctx, dailyKey)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	pipe.ExpireAt(ctx, dailyKey, tomorrow)

	pipe.Incr(ctx, monthlyKey)
	nextMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	pipe.ExpireAt(ctx, monthlyKey, nextMonth)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	result.Allowed = true
	result.DailyUsed++
	result.MonthlyUsed++

	return result, nil
}
