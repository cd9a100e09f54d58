package cache

import (
	"context"
	"time"

	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// apiCacheRepository caches raw city open API responses in Redis so repeated
// route searches within the TTL window do not re-hit the upstream feeds.
type apiCacheRepository struct {
	redis  *Redis
	logger *zap.Logger
}

func NewAPICacheRepository(r *Redis) repository.CacheRepository {
	return &apiCacheRepository{
		redis:  r,
		logger: r.logger,
	}
}

func (c *apiCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.redis.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (c *apiCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redis.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (c *apiCacheRepository) Delete(ctx context.Context, key string) error {
	return c.redis.client.Del(ctx, key).Err()
}

func (c *apiCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.redis.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
