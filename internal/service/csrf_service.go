package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CSRFService issues and validates per-user CSRF tokens backed by Redis
type CSRFService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCSRFService creates a new CSRF service
func NewCSRFService(redisURL string, ttlSeconds int) (*CSRFService, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CSRFService{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Client exposes the Redis connection so other services can share it
func (s *CSRFService) Client() *redis.Client {
	return s.client
}

// Issue generates a fresh token for the user and stores it with the
// configured TTL. Issuing replaces any previous token.
func (s *CSRFService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate CSRF token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(bytes)

	key := csrfKey(userID)
	if err := s.client.Set(ctx, key, token, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store CSRF token: %w", err)
	}

	return token, nil
}

// Validate checks the presented token against the stored one
func (s *CSRFService) Validate(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return ErrInvalidCSRFToken
	}

	stored, err := s.client.Get(ctx, csrfKey(userID)).Result()
	if err == redis.Nil {
		return ErrInvalidCSRFToken
	}
	if err != nil {
		return fmt.Errorf("failed to load CSRF token: %w", err)
	}

	if stored != token {
		return ErrInvalidCSRFToken
	}

	return nil
}

// Close closes the Redis connection
func (s *CSRFService) Close() error {
	return s.client.Close()
}

func csrfKey(userID uuid.UUID) string {
	return fmt.Sprintf("csrf:%s", userID.String())
}
