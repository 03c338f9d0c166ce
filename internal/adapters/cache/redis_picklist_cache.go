package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPicklistCache is a best-effort Redis cache for filter picklists.
// Picklists change rarely and tolerate short staleness, so entries carry a
// TTL and every cache failure is logged and treated as a miss.
type RedisPicklistCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPicklistCache(addr string, ttl time.Duration) *RedisPicklistCache {
	return &RedisPicklistCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *RedisPicklistCache) Get(ctx context.Context, key string) ([]string, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("picklist cache get failed key=%s err=%v", key, err)
		}
		return nil, false
	}

	var values []string
	if err := json.Unmarshal(b, &values); err != nil {
		log.Printf("picklist cache decode failed key=%s err=%v", key, err)
		return nil, false
	}
	return values, true
}

func (c *RedisPicklistCache) Put(ctx context.Context, key string, values []string) {
	b, err := json.Marshal(values)
	if err != nil {
		log.Printf("picklist cache encode failed key=%s err=%v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("picklist cache put failed key=%s err=%v", key, err)
	}
}

func (c *RedisPicklistCache) Close() error {
	return c.rdb.Close()
}
