package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached page can get even if an invalidation
// is missed.
const DefaultTTL = 10 * time.Minute

// Pages caches rendered HTML keyed by request path. Mutating actions
// invalidate the paths they affect, so a hit is always a faithful render.
// A nil Redis client disables caching entirely; every lookup misses.
type Pages struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPages creates a page cache backed by the given Redis client, which may
// be nil.
func NewPages(client *redis.Client) *Pages {
	return &Pages{client: client, ttl: DefaultTTL}
}

func (p *Pages) key(path string) string {
	return "page:" + path
}

// Get returns the cached HTML for a path, or "" on a miss.
func (p *Pages) Get(ctx context.Context, path string) string {
	if p.client == nil {
		return ""
	}
	val, err := p.client.Get(ctx, p.key(path)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("page cache get %s: %v", path, err)
		}
		return ""
	}
	return val
}

// Set stores the rendered HTML for a path.
func (p *Pages) Set(ctx context.Context, path, html string) {
	if p.client == nil {
		return
	}
	if err := p.client.Set(ctx, p.key(path), html, p.ttl).Err(); err != nil {
		log.Printf("page cache set %s: %v", path, err)
	}
}

// Invalidate drops the cached render of each path. A failed delete is logged
// and otherwise ignored: the TTL bounds the staleness window.
func (p *Pages) Invalidate(ctx context.Context, paths ...string) {
	if p.client == nil || len(paths) == 0 {
		return
	}
	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = p.key(path)
	}
	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("page cache invalidate %v: %v", paths, err)
	}
}
