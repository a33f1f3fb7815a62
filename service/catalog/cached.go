package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"companion.GO/core/logger"
)

const groupsCacheKey = "catalog:groups"

// CachedProvider fronts another Provider with a Redis JSON cache of the group map.
// A nil client turns it into a passthrough.
type CachedProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProvider(next Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, client: client, ttl: ttl}
}

func (c *CachedProvider) Groups(ctx context.Context) (map[string]RecommendationGroup, error) {
	if c.client == nil {
		return c.next.Groups(ctx)
	}
	raw, err := c.client.Get(ctx, groupsCacheKey).Bytes()
	if err == nil {
		var groups map[string]RecommendationGroup
		if jsonErr := json.Unmarshal(raw, &groups); jsonErr == nil {
			return groups, nil
		}
		logger.L().Warn("catalog cache: corrupt entry, reloading")
	} else if !errors.Is(err, redis.Nil) {
		logger.L().Warn("catalog cache: read failed", zap.Error(err))
	}
	return c.Warm(ctx)
}

func (c *CachedProvider) Product(ctx context.Context, id string) (Product, error) {
	if c.client == nil {
		return c.next.Product(ctx, id)
	}
	groups, err := c.Groups(ctx)
	if err != nil {
		return Product{}, err
	}
	if p, err := FindInGroups(groups, id); err == nil {
		return p, nil
	}
	// Products outside any group only live in the backing provider.
	return c.next.Product(ctx, id)
}

// Warm reloads the groups from the backing provider and rewrites the cache entry.
func (c *CachedProvider) Warm(ctx context.Context) (map[string]RecommendationGroup, error) {
	groups, err := c.next.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if c.client == nil {
		return groups, nil
	}
	raw, err := json.Marshal(groups)
	if err != nil {
		return groups, nil
	}
	if err := c.client.Set(ctx, groupsCacheKey, raw, c.ttl).Err(); err != nil {
		logger.L().Warn("catalog cache: write failed", zap.Error(err))
	}
	return groups, nil
}
