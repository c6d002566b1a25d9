package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/blog-service/internal/domain"
)

// PostCache is a read-through cache for post-by-id lookups. Entries are
// invalidated on every mutation so tombstone and ownership decisions are
// always made against the store, never the cache.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPostCache wires the cache over an existing Redis client. A nil client
// disables caching; all operations become no-ops.
func NewPostCache(r *Redis, ttl time.Duration, logger *zap.Logger) *PostCache {
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &PostCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(postID string) string {
	return "post:" + postID
}

// Get returns the cached post, or nil on miss or any cache failure.
func (c *PostCache) Get(ctx context.Context, postID string) *domain.Post {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, cacheKey(postID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("post cache read failed", zap.Error(err))
		}
		return nil
	}
	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil
	}
	return &post
}

// Set stores the post. Cache failures are logged and swallowed; the store
// remains the source of truth.
func (c *PostCache) Set(ctx context.Context, post *domain.Post) {
	if c == nil || c.client == nil || post == nil {
		return
	}
	raw, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(post.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("post cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached entry for a post.
func (c *PostCache) Invalidate(ctx context.Context, postID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(postID)).Err(); err != nil {
		c.logger.Debug("post cache invalidation failed", zap.Error(err))
	}
}
