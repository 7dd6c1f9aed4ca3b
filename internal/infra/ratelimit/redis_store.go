package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/apptask/backend/config"
)

const keyPrefix = "ratelimit:"

// RedisStore keeps counters in Redis so every instance shares the same limits.
type RedisStore struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRedisStore creates a Redis-backed store allowing maxAttempts per window.
func NewRedisStore(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RedisStore {
	return &RedisStore{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Allow increments the counter of key and reports whether it is still within the limit.
// The window starts with the first request and expires with the key.
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.windowDuration).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(s.maxAttempts), nil
}

// NewRedisClient connects to the Redis server described by cfg.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
