// Package statscache caches dashboard counters in redis for a short TTL.
// The cache is optional: with no redis configured every read goes straight
// to the database.
package statscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dentalcare/clinic-scheduler/internal/dto"
)

const ttl = 30 * time.Second

type Cache struct {
	rdb *redis.Client
}

// New returns nil when redisURL is empty; callers treat a nil *Cache as
// a cache that always misses.
func New(redisURL string) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &Cache{rdb: redis.NewClient(opt)}, nil
}

func key(tenantID string) string {
	return "dashboard:stats:" + tenantID
}

func (c *Cache) Get(ctx context.Context, tenantID string) (*dto.DashboardStatsDTO, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(tenantID)).Result()
	if err != nil {
		return nil, false
	}

	var stats dto.DashboardStatsDTO
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *Cache) Set(ctx context.Context, tenantID string, stats *dto.DashboardStatsDTO) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	// Best effort; a failed write only costs a recount on the next read.
	c.rdb.Set(ctx, key(tenantID), raw, ttl)
}
