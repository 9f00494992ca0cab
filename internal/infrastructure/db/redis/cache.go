package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bankcore/client-registry/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// ClientCache caches client lookup results by id.
// Key format: client:<id>
//
// The cache is best effort: Redis failures are logged and treated as misses
// so the store remains the source of truth.
type ClientCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewClientCache creates a ClientCache wrapping the given Redis client.
func NewClientCache(client *redis.Client, log zerolog.Logger) *ClientCache {
	return &ClientCache{client: client, log: log}
}

func (c *ClientCache) Get(ctx context.Context, id int64) (*ports.ClientResult, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Int64("client_id", id).Msg("client cache read failed")
		}
		return nil, false
	}

	var result ports.ClientResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn().Err(err).Int64("client_id", id).Msg("client cache entry corrupt")
		return nil, false
	}
	return &result, true
}

func (c *ClientCache) Set(ctx context.Context, result *ports.ClientResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(result.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Int64("client_id", result.ID).Msg("client cache write failed")
	}
}

func (c *ClientCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Int64("client_id", id).Msg("client cache invalidation failed")
	}
}

func (c *ClientCache) key(id int64) string {
	return fmt.Sprintf("client:%d", id)
}
