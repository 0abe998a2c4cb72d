// Package driver provides implementations for external dependencies.
package driver

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"auth-gate/internal/domain"
)

// RedisDriver wraps a shared go-redis client used both as the user
// cache (GET/SET) and as the durable event stream (XADD). One instance
// is created at startup and reused across concurrent requests.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriver creates a Redis driver from a URL
// (redis://host:port/db).
func NewRedisDriver(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

// NewRedisDriverWithClient wraps an existing client. Used by tests.
func NewRedisDriverWithClient(client *redis.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

// Close closes the Redis connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// GetValue reads the payload stored under key. found=false means the
// key does not exist; any other failure is returned as an error.
func (d *RedisDriver) GetValue(ctx context.Context, key string) (string, bool, error) {
	value, err := d.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetValue stores payload under key with the given TTL (0 = no expiry).
func (d *RedisDriver) SetValue(ctx context.Context, key, payload string, ttl time.Duration) error {
	return d.client.Set(ctx, key, payload, ttl).Err()
}

// PublishEvent appends an event to stream and returns the stream
// message id.
func (d *RedisDriver) PublishEvent(ctx context.Context, stream string, event *domain.UnauthorizedEvent) (string, error) {
	if event == nil {
		return "", errors.New("event is nil")
	}

	userJSON, err := json.Marshal(event.User)
	if err != nil {
		return "", err
	}

	return d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"event_id":   event.ID,
			"message":    event.Message,
			"user":       string(userJSON),
			"source":     event.Source,
			"created_at": event.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		},
	}).Result()
}

// Ping checks if Redis is available.
func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
