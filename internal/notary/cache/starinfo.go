// Package cache provides a redis read-through cache for star info lookups.
// Star records are immutable once created, so TTL staleness only delays
// visibility of brand-new stars; creation invalidates eagerly anyway.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"starnotary/internal/notary/models"
)

// DefaultTTL bounds retention of cached star info.
const DefaultTTL = 5 * time.Minute

// StarInfo caches rendered star info tuples in redis.
type StarInfo struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates the cache. TTL of zero falls back to DefaultTTL.
func New(client *redis.Client, ttl time.Duration) *StarInfo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StarInfo{client: client, ttl: ttl}
}

func key(token models.TokenID) string {
	return fmt.Sprintf("star:info:%d", token)
}

// Get returns the cached info for a token. The second result reports a hit;
// failures degrade to a miss so the caller falls through to the store.
func (c *StarInfo) Get(ctx context.Context, token models.TokenID) (models.Info, bool) {
	raw, err := c.client.Get(ctx, key(token)).Bytes()
	if err != nil {
		return models.Info{}, false
	}
	var info models.Info
	if err := json.Unmarshal(raw, &info); err != nil {
		return models.Info{}, false
	}
	return info, true
}

// Set stores the rendered info for a token.
func (c *StarInfo) Set(ctx context.Context, token models.TokenID, info models.Info) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal star info: %w", err)
	}
	if err := c.client.Set(ctx, key(token), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache star info: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry for a token.
func (c *StarInfo) Invalidate(ctx context.Context, token models.TokenID) error {
	if err := c.client.Del(ctx, key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate star info: %w", err)
	}
	return nil
}
