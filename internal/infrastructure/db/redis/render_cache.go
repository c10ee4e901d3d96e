package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	renderKeyPrefix  = "eldlogs:render:"
	defaultRenderTTL = 10 * time.Minute
	purgeBatch       = 500
)

// RenderCache stores rendered timeline paths in Redis so every API replica
// shares them.
// Key format: eldlogs:render:<digest>
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache wraps client. Entries expire after ttl (default 10m).
func NewRenderCache(client *redis.Client, ttl time.Duration) *RenderCache {
	if ttl <= 0 {
		ttl = defaultRenderTTL
	}
	return &RenderCache{client: client, ttl: ttl}
}

func (c *RenderCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, renderKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("render cache get: %w", err)
	}
	return v, true, nil
}

func (c *RenderCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, renderKeyPrefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("render cache set: %w", err)
	}
	return nil
}

// Purge deletes every key under the render prefix. Other keys in the same
// database are left alone. All keys are collected before the first delete;
// deleting mid-scan shifts the cursor past live keys.
func (c *RenderCache) Purge(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, renderKeyPrefix+"*", purgeBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("render cache scan: %w", err)
	}

	for batch := range slices.Chunk(keys, purgeBatch) {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("render cache delete: %w", err)
		}
	}
	return nil
}
