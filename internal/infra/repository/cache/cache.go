// Package cache wraps a Redis store behind the read/write helpers the rest of
// the application uses. A broken or unreachable store is never surfaced as an
// error: reads degrade to misses and writes to no-ops, so every business
// operation still runs against Spotify directly.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const opTimeout = 5 * time.Second

type Cache struct {
	redisClient *redis.Client
	namespace   string
}

func New(redisClient *redis.Client, namespace string) *Cache {
	return &Cache{
		redisClient: redisClient,
		namespace:   namespace,
	}
}

func (c *Cache) Namespace() string {
	return c.namespace
}

// Enabled reports whether the store answers a PING right now. It is a live
// probe, not a cached flag, so the cache self-heals once Redis comes back.
func (c *Cache) Enabled(ctx context.Context) bool {
	if c == nil || c.redisClient == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Cache store unreachable, acting as disabled")
		return false
	}
	return true
}

// KeyFor derives the cache key for a logical operation call. Positional
// argument order matters, keyword argument order does not: kwargs are sorted
// by name before hashing. The digest is truncated to 16 hex chars, which is
// 64 bits, enough to make collisions astronomically unlikely for realistic
// argument cardinalities.
func (c *Cache) KeyFor(prefix string, args []string, kwargs map[string]string) string {
	parts := make([]string, 0, len(args)+len(kwargs))
	parts = append(parts, args...)

	names := make([]string, 0, len(kwargs))
	for name := range kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+"="+kwargs[name])
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	digest := hex.EncodeToString(sum[:])[:16]

	return c.namespace + ":" + prefix + ":" + digest
}

// Get returns the raw cached payload. Store errors and true misses are
// indistinguishable to the caller: both come back as (nil, false).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return nil, false
	}
	return value, true
}

// Set serializes value to JSON and stores it. A ttl of zero means no expiry.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	serialized, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache serialization failed")
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, key, serialized, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
		return false
	}
	return true
}

func (c *Cache) Delete(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache delete failed")
		return false
	}
	return true
}

// DeletePattern removes every key matching the glob pattern and returns how
// many were removed. The pattern is matched against full keys, namespace
// included.
func (c *Cache) DeletePattern(ctx context.Context, pattern string) int {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	keys, err := c.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		logrus.WithError(err).WithField("pattern", pattern).Warn("Cache pattern lookup failed")
		return 0
	}
	if len(keys) == 0 {
		return 0
	}

	deleted, err := c.redisClient.Del(ctx, keys...).Result()
	if err != nil {
		logrus.WithError(err).WithField("pattern", pattern).Warn("Cache pattern delete failed")
		return 0
	}

	logrus.WithFields(logrus.Fields{
		"pattern": pattern,
		"deleted": deleted,
	}).Info("Cache pattern invalidated")

	return int(deleted)
}

// ClearAll flushes the whole database, matching the original admin operation.
func (c *Cache) ClearAll(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.redisClient.FlushDB(ctx).Err(); err != nil {
		logrus.WithError(err).Error("Cache flush failed")
		return false
	}

	logrus.Warn("Cache flushed")
	return true
}
