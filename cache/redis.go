package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planvault/logutils"
)

// RedisCache stores row lists in Redis so multiple instances share one cache.
// Any Redis failure degrades to a miss or a dropped write; requests never fail
// because the cache store is unreachable.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects a row cache to the Redis instance at addr.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(projectID, tableKey string) ([]map[string]any, bool) {
	ctx, cancel := c.opCtx()
	defer cancel()

	data, err := c.client.Get(ctx, Key(projectID, tableKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logutils.Log.WithError(err).Debug("row cache get failed, treating as miss")
		}
		return nil, false
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *RedisCache) Set(projectID, tableKey string, rows []map[string]any) {
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	ctx, cancel := c.opCtx()
	defer cancel()

	if err := c.client.Set(ctx, Key(projectID, tableKey), data, c.ttl).Err(); err != nil {
		logutils.Log.WithError(err).Debug("row cache set failed, skipping")
	}
}

func (c *RedisCache) Delete(projectID, tableKey string) {
	ctx, cancel := c.opCtx()
	defer cancel()

	if err := c.client.Del(ctx, Key(projectID, tableKey)).Err(); err != nil {
		logutils.Log.WithError(err).Debug("row cache delete failed")
	}
}

func (c *RedisCache) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
