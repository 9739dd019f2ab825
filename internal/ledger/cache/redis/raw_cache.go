package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps a raw batch for one typical reporting cycle.
const DefaultTTL = 5 * time.Minute

// RawCache stores the serialized raw batch of one provider listing.
//
// Key schema:
//
//	ledger:raw:{chain}:{network}:{address}:{category}
type RawCache struct {
	store   Store
	ttl     time.Duration
	metrics Metrics
}

func NewRawCache(store Store, ttl time.Duration, metrics Metrics) *RawCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RawCache{store: store, ttl: ttl, metrics: metrics}
}

func rawKey(key model.LedgerKey, category model.Category) string {
	return fmt.Sprintf("ledger:raw:%s:%s:%s:%s", key.Chain, key.Network, key.Address, category)
}

// Get returns the cached batch. The boolean is false on a cache miss.
func (c *RawCache) Get(ctx context.Context, key model.LedgerKey, category model.Category) (batch json.RawMessage, hit bool, err error) {
	defer func() {
		c.metrics.ObserveLookup(hit, err)
	}()

	data, err := c.store.Get(ctx, rawKey(key, category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get raw %s %s: %w", key, category, err)
	}
	if !json.Valid(data) {
		return nil, false, fmt.Errorf("redis: raw %s %s: cached value is not JSON", key, category)
	}
	return data, true, nil
}

// Set stores batch for the cache TTL.
func (c *RawCache) Set(ctx context.Context, key model.LedgerKey, category model.Category, batch json.RawMessage) error {
	if err := c.store.Set(ctx, rawKey(key, category), []byte(batch), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set raw %s %s: %w", key, category, err)
	}
	return nil
}

// Invalidate drops every cached listing of key.
func (c *RawCache) Invalidate(ctx context.Context, key model.LedgerKey, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	keys := make([]string, 0, len(categories))
	for _, category := range categories {
		keys = append(keys, rawKey(key, category))
	}
	if err := c.store.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis: invalidate raw %s: %w", key, err)
	}
	return nil
}
