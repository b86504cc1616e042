package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	catalogCacheKey   = "trivia:catalog:categories"
	defaultCatalogTTL = 5 * time.Minute
)

// CatalogCache is the Redis-backed CategoryCache. The catalog changes only
// through out-of-band seeding, so a short TTL is enough to stay fresh.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*CatalogCache)(nil)

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context) ([]Category, error) {
	data, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CatalogCache) Set(ctx context.Context, categories []Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogCacheKey, data, c.ttl).Err()
}
