package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient is the slice of the Redis client the cached repository needs.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
