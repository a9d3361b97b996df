package posts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const feedKey = "verbo:feed:recent"

// FeedCachePort caches the recent-posts feed.
type FeedCachePort interface {
	Recent(ctx context.Context, rebuild func(context.Context) ([]Post, error)) ([]Post, error)
	Invalidate(ctx context.Context) error
}

// FeedCache is a redis-backed FeedCachePort. Concurrent rebuilds of a cold
// feed collapse into a single repository query via singleflight.
type FeedCache struct {
	rdb   *redis.Client
	ttl   time.Duration
	group singleflight.Group
}

// NewFeedCache constructs a FeedCache.
func NewFeedCache(rdb *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{rdb: rdb, ttl: ttl}
}

// Recent returns the cached feed, rebuilding and storing it on a miss.
func (c *FeedCache) Recent(ctx context.Context, rebuild func(context.Context) ([]Post, error)) ([]Post, error) {
	raw, err := c.rdb.Get(ctx, feedKey).Bytes()
	if err == nil {
		var cached []Post
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry: fall through and rebuild.
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	resultCh := c.group.DoChan(feedKey, func() (interface{}, error) {
		list, err := rebuild(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(list); err == nil {
			_ = c.rdb.Set(context.WithoutCancel(ctx), feedKey, data, c.ttl).Err()
		}
		return list, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Post), nil
	}
}

// Invalidate drops the cached feed.
func (c *FeedCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, feedKey).Err()
}
