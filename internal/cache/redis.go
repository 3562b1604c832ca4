package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

// Revoke marks a session token as signed out until it would have expired anyway.
func (r *RedisClient) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session in Redis: %w", err)
	}
	return true, nil
}

func oauthStateKey(state string) string {
	return fmt.Sprintf("auth:oauth-state:%s", state)
}

// SaveOAuthState remembers an OAuth state value for the callback to consume.
func (r *RedisClient) SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	return r.client.Set(ctx, oauthStateKey(state), 1, ttl).Err()
}

// ConsumeOAuthState reports whether state was issued and deletes it.
func (r *RedisClient) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	n, err := r.client.Del(ctx, oauthStateKey(state)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping is used by the health endpoint.
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
