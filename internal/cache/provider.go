// Package cache provides caching for public catalog responses.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("key not found")

// Provider defines the interface for the catalog response cache.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Provider              string
	RedisConnectionString string
}

func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryProvider()
	case "redis":
		return NewRedisProvider(cfg.RedisConnectionString)
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}

// ProductListKey is the cache key for the public product listing.
func ProductListKey() string {
	return "catalog:products"
}

// ProductKey is the cache key for one product's detail payload.
func ProductKey(id uuid.UUID) string {
	return "catalog:product:" + id.String()
}
