package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keeps serialized responses for the hot public list endpoints.
// With no Redis address configured every method is a no-op, so handlers
// never need to branch on whether caching is on.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

func (c *Cache) Enabled() bool {
	return c.client != nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get failed for %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}

// Invalidate drops every key under the given prefix. Called after any
// admin write to the owning collection.
func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache del failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache scan failed for %s: %v", prefix, err)
	}
}
