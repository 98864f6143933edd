package system

import (
	"context"

	"github.com/rhythmbox/rhythmbox/internal/infra/repository/cache"
)

// CacheAdmin exposes the cache operations the system endpoints need.
type CacheAdmin interface {
	Enabled(ctx context.Context) bool
	Stats(ctx context.Context) cache.Stats
	ClearAll(ctx context.Context) bool
}

// SessionInfo reports whether a user is logged in.
type SessionInfo interface {
	Authenticated() bool
	UserID() string
}
