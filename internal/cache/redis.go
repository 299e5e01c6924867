package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client кеширует списки каталога (ланчи, сеансы) как сырой JSON,
// чтобы горячие GET-запросы не ходили в базу
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

type Config struct {
	Addr     string
	Password string
	TTL      time.Duration
}

// NewClient connects to Redis. Empty Addr means caching is disabled;
// callers hold a nil *Client in that case.
func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: rdb, ttl: cfg.TTL}, nil
}

func catalogKey(name string) string {
	return "catalog:" + name
}

// GetCatalogRaw returns the cached JSON body for a catalog listing
func (c *Client) GetCatalogRaw(ctx context.Context, name string) ([]byte, error) {
	raw, err := c.client.Get(ctx, catalogKey(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog %s not in cache", name)
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return raw, nil
}

// SetCatalogRaw stores a catalog listing body with the configured TTL
func (c *Client) SetCatalogRaw(ctx context.Context, name string, body []byte) error {
	return c.client.Set(ctx, catalogKey(name), body, c.ttl).Err()
}

// InvalidateCatalog drops a cached listing after a mutation
func (c *Client) InvalidateCatalog(ctx context.Context, name string) error {
	return c.client.Del(ctx, catalogKey(name)).Err()
}

func (c *Client) Close() error {
	return c.client.Close()
}
