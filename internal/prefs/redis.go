package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a Redis preference store.
type RedisOptions struct {
	Addr     string
	Password string
	Hash     string // Hash holding every preference
	DB       int
}

// Redis keeps preferences as fields of one Redis hash.
type Redis struct {
	client *redis.Client
	hash   string
}

// NewRedis connects to Redis and verifies the connection, retrying transient
// failures.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	if opts.Hash == "" {
		return nil, errors.New("redis hash name is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	err := common.WithRetry(ctx, func() error {
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			return &common.RetryableError{Err: pingErr, Retryable: true}
		}
		return nil
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2,
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &Redis{client: client, hash: opts.Hash}, nil
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, r.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements Store.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.HSet(ctx, r.hash, key, value).Err(); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

// Delete implements ResettableStore.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.HDel(ctx, r.hash, key).Err(); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
