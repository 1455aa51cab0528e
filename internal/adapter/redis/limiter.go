// Package redis holds the Redis-backed adapters.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type txPipeliner interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// FixedWindowLimiter allows limit hits per key in each window. The window
// starts with the first hit on a key.
type FixedWindowLimiter struct {
	rdb    txPipeliner
	limit  int64
	window time.Duration
}

func NewFixedWindowLimiter(rdb *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{rdb: rdb, limit: int64(limit), window: window}
}

// Allow counts the hit and sets the window TTL in one MULTI/EXEC, so a key
// never outlives its window. EXPIRE NX needs Redis 7.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= l.limit, nil
}
