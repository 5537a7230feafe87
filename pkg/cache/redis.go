package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisClient wraps go-redis with the small surface the usecases need.
// A nil *RedisClient is valid and behaves as a cache miss everywhere, so
// the service keeps working when Redis is down or not configured.
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg *Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisClient{Client: client}, nil
}

// Get returns the cached value, or ("", false) on miss or error.
func (c *RedisClient) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value with a TTL. Errors are ignored: the cache is advisory.
func (c *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.Client.Set(ctx, key, value, ttl)
}

// Del invalidates keys.
func (c *RedisClient) Del(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.Client.Del(ctx, keys...)
}

func (c *RedisClient) Close() error {
	if c == nil {
		return nil
	}
	return c.Client.Close()
}
