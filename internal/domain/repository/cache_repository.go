package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level TTL cache used in front of the city open
// API feeds.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
