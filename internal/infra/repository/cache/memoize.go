package cache

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
)

// ReadCache is the slice of Cache the memoizing wrapper needs. Declared here
// so wrapped operations can be tested against an in-memory fake.
type ReadCache interface {
	Enabled(ctx context.Context) bool
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	KeyFor(prefix string, args []string, kwargs map[string]string) string
}

// Invalidator is the slice of Cache the invalidating wrapper needs.
type Invalidator interface {
	Enabled(ctx context.Context) bool
	DeletePattern(ctx context.Context, pattern string) int
	Namespace() string
}

// Store combines both roles for components that memoize reads and
// invalidate on writes.
type Store interface {
	ReadCache
	Invalidator
}

// Memoize wraps a read operation with a cache lookup. On a hit the operation
// is not invoked at all; on a miss, a disabled cache, or a payload that no
// longer unmarshals, the operation runs and a non-empty result is stored
// best-effort with the given ttl. A failed Set never affects the returned
// result, and errors from the operation are never cached.
func Memoize[A, R any](c ReadCache, keyFn func(A) string, ttl time.Duration, op func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	return func(ctx context.Context, args A) (R, error) {
		if c == nil || !c.Enabled(ctx) {
			return op(ctx, args)
		}

		key := keyFn(args)

		if raw, ok := c.Get(ctx, key); ok {
			var cached R
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			logrus.WithField("key", key).Warn("Discarding malformed cache payload")
		}

		result, err := op(ctx, args)
		if err == nil && !isEmpty(result) {
			c.Set(ctx, key, result, ttl)
		}

		return result, err
	}
}

// InvalidateAfter wraps a write operation so that, whatever the outcome, a
// best-effort pattern delete runs once the write has finished. Invalidation
// failure never masks the write result.
func InvalidateAfter[A, R any](c Invalidator, pattern string, op func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	return func(ctx context.Context, args A) (R, error) {
		result, err := op(ctx, args)

		if c != nil && c.Enabled(ctx) {
			c.DeletePattern(ctx, pattern)
		}

		return result, err
	}
}

// isEmpty reports whether a result is not worth caching: nil pointers and
// interfaces, and zero-length slices, maps and strings.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	}
	return false
}
