package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/harvestly/farmbook-api/internal/api/metrics"
	"github.com/harvestly/farmbook-api/internal/core/domain"
)

const (
	farmListKey   = "farms:all"
	farmKeyPrefix = "farms:id:"
	farmCacheTTL  = 30 * time.Second
)

// FarmCache is a read-through cache for farm queries, JSON values under
// farms:* keys. A nil client or any Redis failure degrades to a miss; cache
// trouble never fails a request.
type FarmCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewFarmCache wraps the given client. client may be nil, in which case
// every lookup misses and writes are dropped.
func NewFarmCache(client *redis.Client, log zerolog.Logger) *FarmCache {
	return &FarmCache{client: client, log: log}
}

func (c *FarmCache) GetList(ctx context.Context) ([]*domain.Farm, bool) {
	raw, ok := c.get(ctx, farmListKey)
	if !ok {
		return nil, false
	}
	var farms []*domain.Farm
	if err := json.Unmarshal(raw, &farms); err != nil {
		return nil, false
	}
	return farms, true
}

func (c *FarmCache) SetList(ctx context.Context, farms []*domain.Farm) {
	c.set(ctx, farmListKey, farms)
}

func (c *FarmCache) GetFarm(ctx context.Context, id string) (*domain.Farm, bool) {
	raw, ok := c.get(ctx, farmKeyPrefix+id)
	if !ok {
		return nil, false
	}
	var farm domain.Farm
	if err := json.Unmarshal(raw, &farm); err != nil {
		return nil, false
	}
	return &farm, true
}

func (c *FarmCache) SetFarm(ctx context.Context, farm *domain.Farm) {
	if farm == nil {
		return
	}
	c.set(ctx, farmKeyPrefix+farm.ID, farm)
}

// Invalidate drops the cached farm list. Per-farm entries are immutable once
// created, so TTL expiry is enough for those.
func (c *FarmCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, farmListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("farm cache invalidate failed")
	}
}

func (c *FarmCache) get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("farm cache read failed")
		}
		metrics.FarmCacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.FarmCacheLookupsTotal.WithLabelValues("hit").Inc()
	return raw, true
}

func (c *FarmCache) set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, farmCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("farm cache write failed")
	}
}
